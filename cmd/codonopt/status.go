package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/vireobio/codonopt/job"
)

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "poll the status of a submitted job",
		ArgsUsage: "JOB_ID",
		Flags:     []cli.Flag{storePathFlag},
		Action:    statusAction,
	}
}

func statusAction(c *cli.Context) error {
	jobID := c.Args().First()
	if jobID == "" {
		return fmt.Errorf("status requires a job id argument")
	}

	store, err := job.Open(c.String("store"))
	if err != nil {
		return err
	}
	defer store.Close()

	j, err := store.Get(jobID)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "job_id: %s\n", j.ID)
	fmt.Fprintf(os.Stdout, "state: %s\n", j.State)
	fmt.Fprintf(os.Stdout, "protein_sequence: %s\n", j.ProteinSequence)
	fmt.Fprintf(os.Stdout, "target_organism: %s\n", j.TargetOrganism)

	switch j.State {
	case job.Completed:
		dna := ""
		if j.DNASequence != nil {
			dna = *j.DNASequence
		}
		fmt.Fprintf(os.Stdout, "dna_sequence: %s\n", dna)
		aaCount := len(j.ProteinSequence)
		fmt.Fprintf(os.Stdout, "aa_count: %d\n", aaCount)
		fmt.Fprintf(os.Stdout, "dna_length: %d\n", aaCount*3)
		fmt.Fprintf(os.Stdout, "gc_percent: %.2f\n", gcPercent(dna))
	case job.Failed:
		if structuredErr := j.StructuredError(); structuredErr != nil {
			fmt.Fprintf(os.Stdout, "error: %s: %s\n", structuredErr.Kind, structuredErr.Message)
		}
	}

	return nil
}

// gcPercent computes the percentage of G and C bases, per spec.md §6's
// job status derived stats; statusAction prints it to two decimal
// places.
func gcPercent(dna string) float64 {
	if len(dna) == 0 {
		return 0
	}
	gc := strings.Count(dna, "G") + strings.Count(dna, "C")
	return float64(gc) * 100 / float64(len(dna))
}
