package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/vireobio/codonopt/exclusion"
	"github.com/vireobio/codonopt/job"
	"github.com/vireobio/codonopt/protein"
)

func submitCommand() *cli.Command {
	return &cli.Command{
		Name:  "submit",
		Usage: "submit a protein sequence for codon optimization",
		Flags: []cli.Flag{
			storePathFlag,
			baseExclusionFileFlag,
			maxPatternLengthFlag,
			&cli.StringFlag{Name: "protein", Usage: "raw protein sequence", Required: true},
			&cli.StringFlag{Name: "name", Usage: "optional protein name"},
			&cli.StringFlag{Name: "organism", Usage: "target organism tag", Value: "pichia"},
			&cli.StringFlag{Name: "notify", Usage: "optional notification address"},
			&cli.StringSliceFlag{Name: "enzyme", Usage: "enzyme name to exclude (repeatable)"},
			&cli.StringSliceFlag{Name: "pattern", Usage: "extra raw exclusion pattern (repeatable)"},
			&cli.StringFlag{Name: "preset", Usage: `standard exclusion preset to apply (only "goldengate" is built in)`},
		},
		Action: submitAction,
	}
}

func submitAction(c *cli.Context) error {
	rawProtein := c.String("protein")
	sequence, warnings, err := protein.Validate(rawProtein)
	if err != nil {
		return fmt.Errorf("InvalidSequence: %w", err)
	}

	basePatterns, err := loadBaseExclusionPatterns(c.String("base-exclusion-file"))
	if err != nil {
		return err
	}
	enzymeNames := c.StringSlice("enzyme")
	rawPatterns := c.StringSlice("pattern")
	if presetName := c.String("preset"); presetName != "" {
		preset, err := exclusion.LookupPreset(presetName)
		if err != nil {
			return fmt.Errorf("InvalidConfiguration: %w", err)
		}
		enzymeNames = append(enzymeNames, preset.EnzymeNames...)
		rawPatterns = append(rawPatterns, preset.RawPatterns...)
	}
	if _, err := exclusion.Compile(basePatterns, exclusion.Config{
		EnzymeNames: enzymeNames,
		RawPatterns: rawPatterns,
	}, c.Int("max-pattern-window")); err != nil {
		return fmt.Errorf("InvalidConfiguration: %w", err)
	}

	store, err := job.Open(c.String("store"))
	if err != nil {
		return err
	}
	defer store.Close()

	input := job.SubmitInput{
		ProteinSequence:     sequence.String(),
		TargetOrganism:      c.String("organism"),
		ExcludedEnzymeNames: enzymeNames,
		ExtraRawPatterns:    rawPatterns,
	}
	if name := c.String("name"); name != "" {
		input.ProteinName = &name
	}
	if address := c.String("notify"); address != "" {
		input.NotificationAddress = &address
	}

	submitted, err := store.Submit(input)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "job_id: %s\n", submitted.ID)
	for _, w := range warnings {
		fmt.Fprintf(os.Stdout, "warning: %s: %s\n", w.Kind, w.Message)
	}
	return nil
}

// loadBaseExclusionPatterns reads and parses the process-wide base
// exclusion file, per spec.md §6. An empty path means no base file was
// configured.
func loadBaseExclusionPatterns(path string) ([]exclusion.BasePattern, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading base exclusion file %q: %w", path, err)
	}
	return exclusion.ParseBaseFile(data)
}
