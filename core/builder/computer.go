package builder

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Computer is assembled part by part by a ComputerBuilder.
type Computer struct {
	Processor string `json:"processor" validate:"required"`
	RAM       string `json:"ram" validate:"required"`
	Storage   string `json:"storage" validate:"required"`
}

func (c *Computer) SetProcessor(p string) { c.Processor = p }
func (c *Computer) SetRAM(r string)       { c.RAM = r }
func (c *Computer) SetStorage(s string)   { c.Storage = s }

// Describe returns the one-line summary of the computer.
func (c *Computer) Describe() string {
	return fmt.Sprintf("Computer with %s processor, %s RAM, and %s storage.", c.Processor, c.RAM, c.Storage)
}

// Show writes the description to w.
func (c *Computer) Show(w io.Writer) error {
	_, err := fmt.Fprintln(w, c.Describe())
	return err
}

// Validate reports the parts that have not been assembled yet.
func (c *Computer) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return fmt.Errorf("computer incomplete, missing %s", strings.Join(missing, ", "))
}
