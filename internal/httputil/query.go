package httputil

import (
	"net/url"
	"reflect"
	"strings"
)

type field struct {
	name string
	tag  string
}

// jsonFields lists the exported fields of the struct v with the name used
// for them in JSON.
func jsonFields(v any) []field {
	val := reflect.Indirect(reflect.ValueOf(v))

	fields := []field{}
	for i := 0; i < val.NumField(); i++ {
		f := val.Type().Field(i)
		if !f.IsExported() {
			continue
		}

		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = f.Name
		}

		fields = append(fields, field{name: f.Name, tag: tag})
	}

	return fields
}

// GetURLFields returns the fields of filter whose "form" parameter is set in
// the query string of url.
//
// queryFields can be passed to a gorm Where statement directly. Fields tagged
// with filterField:"false" are only contained in setFields, they need to be
// handled explicitly.
func GetURLFields(url *url.URL, filter any) (queryFields []any, setFields []string) {
	val := reflect.Indirect(reflect.ValueOf(filter))
	query := url.Query()

	for i := 0; i < val.NumField(); i++ {
		f := val.Type().Field(i)
		param := f.Tag.Get("form")

		if param == "" || !query.Has(param) {
			continue
		}

		setFields = append(setFields, f.Name)
		if f.Tag.Get("filterField") != "false" {
			queryFields = append(queryFields, f.Name)
		}
	}

	return queryFields, setFields
}
