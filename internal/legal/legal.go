package legal

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"creatorrate.app/cloud/models"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

var (
	ssnPattern = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
	einPattern = regexp.MustCompile(`^\d{2}-\d{7}$`)
	vatPattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{2,12}$`)
)

// EU VAT area, for the vat_id prefix check.
var euCountries = map[string]bool{
	"AT": true, "BE": true, "BG": true, "CY": true, "CZ": true,
	"DE": true, "DK": true, "EE": true, "ES": true, "FI": true,
	"FR": true, "GR": true, "HR": true, "HU": true, "IE": true,
	"IT": true, "LT": true, "LU": true, "LV": true, "MT": true,
	"NL": true, "PL": true, "PT": true, "RO": true, "SE": true,
	"SI": true, "SK": true,
}

// Validate checks a tax profile: struct-level constraints first, then the
// country-conditional identifier shapes. All violations are reported
// together rather than first-error-wins.
func Validate(profile *models.LegalProfile) error {
	var result *multierror.Error

	v := validator.New()
	// Report violations by their wire names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.Struct(profile); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				result = multierror.Append(result, fmt.Errorf("%s failed %q validation", fe.Field(), fe.Tag()))
			}
		} else {
			result = multierror.Append(result, err)
		}
		// Country-conditional checks need a well-formed base profile.
		return result.ErrorOrNil()
	}

	country := strings.ToUpper(profile.Country)

	if country == "US" {
		switch profile.BusinessType {
		case models.BusinessTypeIndividual:
			if !ssnPattern.MatchString(profile.TaxID) {
				result = multierror.Append(result, fmt.Errorf("tax_id must be an SSN in NNN-NN-NNNN form for US individuals"))
			}
		case models.BusinessTypeCompany:
			if !einPattern.MatchString(profile.TaxID) {
				result = multierror.Append(result, fmt.Errorf("tax_id must be an EIN in NN-NNNNNNN form for US companies"))
			}
		}
	}

	if profile.VATRegistered {
		if !euCountries[country] {
			result = multierror.Append(result, fmt.Errorf("vat_registered requires an EU country"))
		} else {
			vatID := strings.ToUpper(strings.ReplaceAll(profile.VATID, " ", ""))
			if !vatPattern.MatchString(vatID) {
				result = multierror.Append(result, fmt.Errorf("vat_id is not a valid VAT identifier"))
			} else if !strings.HasPrefix(vatID, vatPrefix(country)) {
				result = multierror.Append(result, fmt.Errorf("vat_id country prefix must match country %s", country))
			}
		}
	}

	return result.ErrorOrNil()
}

// vatPrefix maps an ISO country code to its VAT number prefix. Greece is
// the one member state whose prefix differs from its ISO code.
func vatPrefix(country string) string {
	if country == "GR" {
		return "EL"
	}
	return country
}
