package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/lookout/internal/application/port"
	"github.com/bnema/lookout/internal/application/usecase"
	"github.com/bnema/lookout/internal/cli/styles"
	"github.com/bnema/lookout/internal/domain/entity"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose preference detection",
	Long: `Doctor probes every detector behind each preference signal and shows
which ones are available, what they report, and which one won.

Examples:
  lookout doctor
  LOOKOUT_DETECTION_PORTAL=false lookout doctor   # skip the desktop portal`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	rt := app.Runtime

	resolvers := make([]port.SignalResolver, 0, len(entity.SignalKinds()))
	for _, kind := range entity.SignalKinds() {
		if r := rt.Env.Resolver(kind); r != nil {
			resolvers = append(resolvers, r)
		}
	}

	uc := usecase.NewDiagnosePreferencesUseCase(resolvers...)
	out, err := uc.Execute(app.Ctx(), usecase.DiagnosePreferencesInput{Refresh: true})
	if err != nil {
		return err
	}

	renderer := styles.NewDoctorRenderer(app.Theme)
	fmt.Println(renderer.Render(doctorReport(out, rt.Manager.ConfigFile())))
	return nil
}

func doctorReport(out *usecase.DiagnosePreferencesOutput, configPath string) styles.DoctorReport {
	report := styles.DoctorReport{
		Headless:   out.Headless,
		Preference: out.Snapshot.String(),
		ClassName:  out.Snapshot.ClassName(),
		ConfigFile: configPath,
	}
	for _, sig := range out.Signals {
		ds := styles.DoctorSignal{
			Media:   sig.Media,
			Matches: sig.State.Matches,
			Source:  sig.State.Source,
		}
		for _, det := range sig.Detectors {
			ds.Detectors = append(ds.Detectors, styles.DoctorDetector{
				Name:      det.Name,
				Priority:  det.Priority,
				Available: det.Available,
				Detected:  det.Detected,
				Matches:   det.Matches,
			})
		}
		report.Signals = append(report.Signals, ds)
	}
	return report
}
