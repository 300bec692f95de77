package cli

import (
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/abstat/internal/metrics"
)

// readArms loads the --control and --treatment metric files of cmd.
func readArms(cmd *cobra.Command) ([]float64, []float64, error) {
	controlFile, _ := cmd.Flags().GetString("control")
	treatmentFile, _ := cmd.Flags().GetString("treatment")

	control, err := metrics.Read(controlFile)
	if err != nil {
		return nil, nil, err
	}
	treatment, err := metrics.Read(treatmentFile)
	if err != nil {
		return nil, nil, err
	}
	return control, treatment, nil
}

func addArmFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "Metric name shown in the report")
	cmd.Flags().String("control", "", "File with control observations (.txt, .json, .csv or .xlsx)")
	cmd.Flags().String("treatment", "", "File with treatment observations (.txt, .json, .csv or .xlsx)")
	cmd.MarkFlagRequired("control")
	cmd.MarkFlagRequired("treatment")
}
