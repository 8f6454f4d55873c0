package cmd

import (
	"fmt"
	"io"

	"housebuilder/internal/core/domain/builders"
	"housebuilder/internal/core/domain/services"
)

// RunDemo builds one standard and one luxury house through a director and
// writes the step notices and the finished descriptions to out.
func RunDemo(out io.Writer) error {
	reporter := builders.NewWriterReporter(out)

	standardBuilder := builders.NewStandardHouseBuilder(reporter)
	director1 := services.NewHouseDirector(standardBuilder)
	director1.ConstructHouse()
	if _, err := fmt.Fprintf(out, "\nStandard House Built: \n%s\n", standardBuilder.House()); err != nil {
		return err
	}

	luxuryBuilder := builders.NewLuxuryHouseBuilder(reporter)
	director2 := services.NewHouseDirector(luxuryBuilder)
	director2.ConstructHouse()
	if _, err := fmt.Fprintf(out, "\nLuxury House Built: \n%s\n", luxuryBuilder.House()); err != nil {
		return err
	}

	return nil
}
