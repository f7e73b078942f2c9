package status

import (
	"fmt"
	"strings"

	"consolelog/internal/app/errors"
	"consolelog/internal/config"
)

// Category is the semantic kind of a log entry
type Category int

// Category values, a closed set
const (
	Default Category = iota
	Info
	Warning
	Error
	Subtle
	Standout
	Success
	Debug
)

var categoryNames = [...]string{
	Default:  config.CategoryDefault,
	Info:     config.CategoryInfo,
	Warning:  config.CategoryWarning,
	Error:    config.CategoryError,
	Subtle:   config.CategorySubtle,
	Standout: config.CategoryStandout,
	Success:  config.CategorySuccess,
	Debug:    config.CategoryDebug,
}

// Categories returns every category in declaration order
func Categories() []Category {
	return []Category{Default, Info, Warning, Error, Subtle, Standout, Success, Debug}
}

// Valid reports whether c belongs to the closed set
func (c Category) Valid() bool {
	return c >= Default && int(c) < len(categoryNames)
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}

	return categoryNames[c]
}

// ParseCategory maps a case-insensitive name back to its category
func ParseCategory(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}

	return Default, fmt.Errorf("%w: '%s'", errors.ErrUnknownCategory, name)
}
