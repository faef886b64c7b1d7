package cmd

import (
	"github.com/JYLeeSci/fishprobes/internal/probe"

	"github.com/spf13/cobra"
)

// thermoCmd represents the thermo command
var thermoCmd = &cobra.Command{
	Use:   "thermo [template window]",
	Short: "Report Gibbs free energy, Tm and GC of one probe window",
	Long: `Report the probe-target Gibbs free energy (kcal/mol), melting temperature
(deg C) and GC percentage of a single template window. The window is given in
template orientation; the probe itself is its reverse complement.`,
	Args: cobra.ExactArgs(1),
	Run:  probe.ThermoCmd,
}

func init() {
	RootCmd.AddCommand(thermoCmd)
}
