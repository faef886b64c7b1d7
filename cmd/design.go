package cmd

import (
	"github.com/JYLeeSci/fishprobes/internal/probe"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// designCmd represents the design command
var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Design a probe set against a target RNA in a FASTA file",
	Long: `Design an smFISH probe set against the target RNA in the input FASTA file.

"fishprobes design" scores every candidate probe window on the target by how far
its probe-target Gibbs free energy lands from the target energy, merges in any
exclusion masks (repeat-masked positions in the input or in a companion
repeat-masked FASTA), then picks the largest well-scoring set of probe windows
that keeps the minimum spacing between neighbors. The probes written out are
the reverse complements of the chosen windows.

Multi-record FASTA files are concatenated before design. Junctions between
records are kept out of every probe window, so no probe spans two records.`,
	Run: probe.DesignCmd,
}

func init() {
	RootCmd.AddCommand(designCmd)

	// paths are read straight from the flags, everything else goes thru viper
	designCmd.Flags().StringP("in", "i", "", "path to a FASTA file with the target sequence")
	designCmd.Flags().StringP("out", "o", "", "prefix for the output files (default: input file basename)")
	designCmd.Flags().StringP("repeat-mask", "r", "", "path to a repeat-masked copy of the input FASTA")

	designCmd.Flags().IntP("length", "l", 20, "probe length in bp")
	designCmd.Flags().Int("min-length", 0, "minimum probe length of a mixed-length design")
	designCmd.Flags().Int("max-length", 0, "maximum probe length of a mixed-length design")
	designCmd.Flags().IntP("spacer", "s", 2, "minimum gap in bp between neighboring probes")
	designCmd.Flags().IntP("max-probes", "n", 48, "number of probes to aim for")
	designCmd.Flags().Float64P("target-gibbs", "g", -23.0, "target probe-target Gibbs free energy (kcal/mol)")
	designCmd.Flags().Float64("min-gibbs", -26.0, "most negative allowable Gibbs free energy (kcal/mol)")
	designCmd.Flags().Float64("max-gibbs", -20.0, "least negative allowable Gibbs free energy (kcal/mol)")

	designCmd.MarkFlagRequired("in")

	viper.BindPFlag("probes.length", designCmd.Flags().Lookup("length"))
	viper.BindPFlag("probes.min-length", designCmd.Flags().Lookup("min-length"))
	viper.BindPFlag("probes.max-length", designCmd.Flags().Lookup("max-length"))
	viper.BindPFlag("probes.spacer", designCmd.Flags().Lookup("spacer"))
	viper.BindPFlag("probes.max-probes", designCmd.Flags().Lookup("max-probes"))
	viper.BindPFlag("thermo.target-gibbs", designCmd.Flags().Lookup("target-gibbs"))
	viper.BindPFlag("thermo.min-gibbs", designCmd.Flags().Lookup("min-gibbs"))
	viper.BindPFlag("thermo.max-gibbs", designCmd.Flags().Lookup("max-gibbs"))
}
