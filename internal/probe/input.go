package probe

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JYLeeSci/fishprobes/config"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// flags are the per-run arguments read straight off the cobra command,
// as opposed to the settings that travel thru viper into config.Config
type flags struct {
	// in is the path to the target FASTA file
	in string

	// out is the prefix of the output files
	out string

	// repeatMask is the path to a repeat-masked copy of the input, or ""
	repeatMask string
}

// parseFlags gathers the in path, out prefix and repeat-mask path
func parseFlags(cmd *cobra.Command) (*flags, error) {
	parsed := &flags{}
	var err error

	if parsed.in, err = cmd.Flags().GetString("in"); err != nil || parsed.in == "" {
		return nil, fmt.Errorf("no input FASTA file: %v", err)
	}

	if parsed.out, err = cmd.Flags().GetString("out"); err != nil || parsed.out == "" {
		// fall back on the input file's name
		base := filepath.Base(parsed.in)
		parsed.out = strings.TrimSuffix(base, filepath.Ext(base))
	}

	parsed.repeatMask, _ = cmd.Flags().GetString("repeat-mask")

	return parsed, nil
}

// DesignCmd takes a cobra command (with its flags) and runs a design end to end
func DesignCmd(cmd *cobra.Command, args []string) {
	parsed, err := parseFlags(cmd)
	if err != nil {
		stderr.Fatalf("failed to parse the design flags: %v", err)
	}

	if err := runDesign(parsed, config.New()); err != nil {
		stderr.Fatalf("failed to design probes against %s: %v", parsed.in, err)
	}
}

// runDesign reads the target, builds the masks, runs the design and writes
// the output files
func runDesign(parsed *flags, c *config.Config) error {
	records, err := ReadFastaFile(parsed.in)
	if err != nil {
		return err
	}
	seq := Clean(Concatenate(records))

	masks, err := gatherMasks(seq, parsed.repeatMask)
	if err != nil {
		return err
	}
	for _, m := range masks {
		stderr.Printf("%s masking: %d positions masked", m.Name, m.Count())
	}

	result, err := Design(Request{Seq: seq, Name: parsed.out, Masks: masks}, c)
	if err != nil {
		return err
	}

	if err := writeOligos(parsed.out+"_oligos.txt", result); err != nil {
		return err
	}
	if err := writeSeqView(parsed.out+"_seq.txt", result); err != nil {
		return err
	}

	printSummary(result, c)
	return nil
}

// gatherMasks builds the exclusion masks a run starts with: the repeat
// mask from a companion repeat-masked FASTA when one was given, otherwise
// from n runs in the input itself (a sign the input arrived pre-masked)
func gatherMasks(seq, repeatMaskPath string) ([]Mask, error) {
	if repeatMaskPath != "" {
		records, err := ReadFastaFile(repeatMaskPath)
		if err != nil {
			return nil, err
		}

		maskedSeq := Clean(Concatenate(records))
		if len(maskedSeq) != len(seq) {
			return nil, fmt.Errorf("repeat-masked sequence is %d bp, the target is %d bp", len(maskedSeq), len(seq))
		}
		return []Mask{RepeatMask(maskedSeq)}, nil
	}

	if strings.Contains(seq, "n") {
		return []Mask{RepeatMask(seq)}, nil
	}

	return nil, nil
}

// printSummary reports how the run went on stderr
func printSummary(result Result, c *config.Config) {
	if !result.Solution.Found {
		stderr.Printf("no probe set against %s scored under the rejection threshold", result.Name)
		return
	}

	s := result.Solution.Summarize()
	stderr.Printf(
		"placed %d probes (requested %d): mean badness %.3f, mean GC %.0f%%, mean Tm %.1f C, mean dG %.1f kcal/mol",
		s.Count, c.Probes.MaxCount, s.Score, s.MeanGC, s.MeanTm, s.MeanGibbs,
	)
}

// ThermoCmd takes a cobra command (with one window argument) and prints
// the window's duplex numbers
func ThermoCmd(cmd *cobra.Command, args []string) {
	window := Clean(args[0])
	if len(window) < config.MinProbeLength || len(window) > config.MaxProbeLength {
		stderr.Fatalf("window must be %d-%d valid bases, got %d", config.MinProbeLength, config.MaxProbeLength, len(window))
	}

	c := config.New()

	gibbs, ok := Gibbs(window)
	if !ok {
		stderr.Fatalf("window %q holds bases the duplex model cannot score", window)
	}
	tm, _ := Tm(window, c.Thermo.ProbeConc, c.Thermo.SodiumConc)

	fmt.Printf("probe\t%s\n", ReverseComplement(window))
	fmt.Printf("dG\t%.2f kcal/mol\n", gibbs)
	fmt.Printf("Tm\t%.1f C\n", tm)
	fmt.Printf("GC\t%.0f%%\n", GCContent(window)*100)
}
