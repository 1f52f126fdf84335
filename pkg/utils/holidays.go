package util

import (
	"encoding/json"
	"io"
	"net/http"

	"Sistem-Manajemen-Gym/models"
)

// HolidayAPIData adalah struct helper untuk parsing JSON dari API hari libur
type HolidayAPIData struct {
	Date              string `json:"holiday_date"`
	Name              string `json:"holiday_name"`
	IsNationalHoliday bool   `json:"is_national_holiday"`
}

// GetHolidayMap mengambil data hari libur nasional dari API eksternal dalam bentuk map.
func GetHolidayMap(year string) (map[string]bool, error) {
	holidayMap := make(map[string]bool)
	rawHolidays, err := fetchHolidays(year)
	if err != nil {
		return nil, err
	}

	for _, rawHoliday := range rawHolidays {
		if rawHoliday.IsNationalHoliday {
			holidayMap[rawHoliday.Date] = true
		}
	}
	return holidayMap, nil
}

// GetExternalHolidays mengambil data hari libur nasional dalam bentuk slice
// untuk ditampilkan langsung ke frontend.
func GetExternalHolidays(year string) ([]models.Holiday, error) {
	rawHolidays, err := fetchHolidays(year)
	if err != nil {
		return nil, err
	}

	var holidays []models.Holiday
	for _, rawHoliday := range rawHolidays {
		if rawHoliday.IsNationalHoliday {
			holidays = append(holidays, models.Holiday{
				Date: rawHoliday.Date,
				Name: rawHoliday.Name,
			})
		}
	}
	return holidays, nil
}

func fetchHolidays(year string) ([]HolidayAPIData, error) {
	resp, err := http.Get("https://api-harilibur.vercel.app/api?year=" + year)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var rawHolidays []HolidayAPIData
	if err := json.Unmarshal(body, &rawHolidays); err != nil {
		return nil, err
	}
	return rawHolidays, nil
}
