package util

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("hasuppercase", validateHasUppercase)
	Validate.RegisterValidation("dategtefield", validateDateGteField)
}

func validateHasUppercase(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	return regexp.MustCompile(`[A-Z]`).MatchString(password)
}

// validateDateGteField membandingkan dua kolom tanggal "2006-01-02" sebagai
// tanggal, bukan string. gtefield bawaan membandingkan panjang string sehingga
// periode terbalik lolos begitu saja.
func validateDateGteField(fl validator.FieldLevel) bool {
	otherField := fl.Parent().FieldByName(fl.Param())
	if !otherField.IsValid() || otherField.Kind() != fl.Field().Kind() {
		return false
	}

	value, err := time.Parse("2006-01-02", fl.Field().String())
	if err != nil {
		// format salah sudah ditangkap tag datetime
		return true
	}
	other, err := time.Parse("2006-01-02", otherField.String())
	if err != nil {
		return true
	}
	return !value.Before(other)
}

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

func ValidateStruct(s interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := Validate.Struct(s)
	if err != nil {

		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.Field = err.Field()
			element.Tag = err.Tag()

			switch err.Tag() {
			case "required":
				element.Msg = fmt.Sprintf("Kolom '%s' wajib diisi.", element.Field)
			case "required_if":
				element.Msg = fmt.Sprintf("Kolom '%s' wajib diisi untuk jenis request ini.", element.Field)
			case "min":
				element.Msg = fmt.Sprintf("Kolom '%s' harus memiliki minimal %s karakter/nilai.", element.Field, err.Param())
			case "max":
				element.Msg = fmt.Sprintf("Kolom '%s' harus memiliki maksimal %s karakter/nilai.", element.Field, err.Param())
			case "gt":
				element.Msg = fmt.Sprintf("Kolom '%s' harus lebih besar dari %s.", element.Field, err.Param())
			case "gtefield", "dategtefield":
				element.Msg = fmt.Sprintf("Kolom '%s' tidak boleh sebelum kolom %s.", element.Field, err.Param())
			case "email":
				element.Msg = "Format email tidak valid."
			case "hasuppercase":
				element.Msg = "Password harus mengandung setidaknya satu huruf kapital."
			case "datetime":
				element.Msg = fmt.Sprintf("Kolom '%s' harus berformat tanggal/jam yang valid.", element.Field)
			case "url":
				element.Msg = fmt.Sprintf("Kolom '%s' harus berupa format URL yang valid.", element.Field)
			case "oneof":
				element.Msg = fmt.Sprintf("Kolom '%s' harus salah satu dari: %s.", element.Field, err.Param())
			default:
				element.Msg = fmt.Sprintf("Kolom '%s' gagal validasi untuk tag '%s'.", element.Field, element.Tag)
			}
			errors = append(errors, &element)
		}
	}
	return errors
}
