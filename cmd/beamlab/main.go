package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/beamlab/internal/beam"
	"github.com/san-kum/beamlab/internal/config"
	"github.com/san-kum/beamlab/internal/diagram"
	"github.com/san-kum/beamlab/internal/export"
	"github.com/san-kum/beamlab/internal/metrics"
	"github.com/san-kum/beamlab/internal/plotimg"
	"github.com/san-kum/beamlab/internal/report"
	"github.com/san-kum/beamlab/internal/storage"
	"github.com/san-kum/beamlab/internal/tui"
)

var (
	dataDir string
	length  float64
	pointP  float64
	pointX  float64
	udlW    float64
	udlA    float64
	udlB    float64
	samples int
	// Config file and preset
	configFile string
	preset     string
	// Output path for diagram/report/export-svg
	outFile string
	// Persist analyze results
	saveRun bool
	// Quiz seed
	seed int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "beamlab",
		Short: "simply supported beam statics lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to interactive mode when no command given
			return tui.RunInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".beamlab", "data directory")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "solve reactions and internal forces",
		RunE:  analyzeBeam,
	}
	addBeamFlags(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run")

	quizCmd := &cobra.Command{
		Use:   "quiz",
		Short: "practice solving for reactions",
		RunE:  runQuiz,
	}
	quizCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run's diagrams",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run profile to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run diagrams to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVGRun,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	diagramCmd := &cobra.Command{
		Use:   "diagram",
		Short: "export shear and moment diagram images",
		RunE:  exportDiagram,
	}
	addBeamFlags(diagramCmd)
	diagramCmd.Flags().StringVar(&outFile, "out", "beam.png", "output file (png, svg or pdf)")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "write a PDF analysis report",
		RunE:  writeReport,
	}
	addBeamFlags(reportCmd)
	reportCmd.Flags().StringVar(&outFile, "out", "report.pdf", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in load cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSPAN\tPOINT\tUDL")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				point, udl := "-", "-"
				if cfg.Point.Magnitude != 0 {
					point = fmt.Sprintf("%.0f kN @ %.0f m", cfg.Point.Magnitude, cfg.Point.Position)
				}
				if cfg.UDL.Intensity != 0 {
					udl = fmt.Sprintf("%.0f kN/m [%.0f, %.0f]", cfg.UDL.Intensity, cfg.UDL.Start, cfg.UDL.End)
				}
				fmt.Fprintf(w, "%s\t%.0f m\t%s\t%s\n", name, cfg.Length, point, udl)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(analyzeCmd, quizCmd, listCmd, plotCmd, exportCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, diagramCmd, reportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addBeamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&length, "length", 10.0, "span in m")
	cmd.Flags().Float64Var(&pointP, "point", 100.0, "point load in kN (0 for none)")
	cmd.Flags().Float64Var(&pointX, "at", 5.0, "point load position in m")
	cmd.Flags().Float64Var(&udlW, "udl", 0.0, "UDL intensity in kN/m (0 for none)")
	cmd.Flags().Float64Var(&udlA, "udl-start", 0.0, "UDL start in m")
	cmd.Flags().Float64Var(&udlB, "udl-end", 0.0, "UDL end in m")
	cmd.Flags().IntVar(&samples, "samples", beam.DefaultSamples, "profile sample count")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a built-in load case")
}

// buildBeam resolves preset, config file and flags into a beam. CLI
// flags override the config file; the config file overrides the preset.
func buildBeam(cmd *cobra.Command) (*beam.Beam, int, error) {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, 0, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		length = cfg.Length
		pointP = cfg.Point.Magnitude
		pointX = cfg.Point.Position
		udlW = cfg.UDL.Intensity
		udlA = cfg.UDL.Start
		udlB = cfg.UDL.End
		samples = cfg.SampleCount()
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("length") {
			length = cfg.Length
		}
		if !cmd.Flags().Changed("point") {
			pointP = cfg.Point.Magnitude
		}
		if !cmd.Flags().Changed("at") {
			pointX = cfg.Point.Position
		}
		if !cmd.Flags().Changed("udl") {
			udlW = cfg.UDL.Intensity
		}
		if !cmd.Flags().Changed("udl-start") {
			udlA = cfg.UDL.Start
		}
		if !cmd.Flags().Changed("udl-end") {
			udlB = cfg.UDL.End
		}
		if !cmd.Flags().Changed("samples") {
			samples = cfg.SampleCount()
		}
	}

	b, err := beam.New(length)
	if err != nil {
		return nil, 0, err
	}
	if pointP != 0 {
		if err := b.AddPointLoad(pointP, pointX); err != nil {
			return nil, 0, err
		}
	}
	if udlW != 0 {
		if err := b.AddUDL(udlW, udlA, udlB); err != nil {
			return nil, 0, err
		}
	}
	return b, samples, nil
}

func collectMetrics(p beam.Profile) map[string]float64 {
	maxM := metrics.NewMaxMoment()
	vals := metrics.Collect(p, metrics.NewMaxShear(), maxM, metrics.NewShearZeroCrossings())
	vals["max_moment_at"] = maxM.At()
	return vals
}

func analyzeBeam(cmd *cobra.Command, args []string) error {
	b, n, err := buildBeam(cmd)
	if err != nil {
		return err
	}

	res, err := b.Solve(n)
	if err != nil {
		return err
	}

	fmt.Println(diagram.FBD(b, &res.Reactions))

	vals := collectMetrics(res.Profile)
	lines := []string{
		fmt.Sprintf("Ra      = %10.3f kN", res.Reactions.Ra),
		fmt.Sprintf("Rb      = %10.3f kN", res.Reactions.Rb),
		fmt.Sprintf("|V|max  = %10.3f kN", vals["max_shear"]),
		fmt.Sprintf("Mmax    = %10.3f kN·m at x = %.2f m", vals["max_moment"], vals["max_moment_at"]),
	}
	fmt.Println(diagram.SummaryBox("EQUILIBRIUM RESULTS", lines))

	fmt.Println(diagram.SFD(res.Profile, 80, 10))
	fmt.Println()
	fmt.Println(diagram.BMD(res.Profile, 80, 10))

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(b, res, vals)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func runQuiz(cmd *cobra.Command, args []string) error {
	return tui.RunQuiz(seed)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSPAN\tLOADS\tRA\tRB")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2fm\t%d\t%.2f\t%.2f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Length,
			len(run.Points)+len(run.UDLs),
			run.Ra,
			run.Rb,
		)
	}

	return w.Flush()
}

// rebuild reconstructs the beam a saved run described.
func rebuild(meta *storage.RunMetadata) (*beam.Beam, error) {
	b, err := beam.New(meta.Length)
	if err != nil {
		return nil, err
	}
	for _, p := range meta.Points {
		if err := b.AddPointLoad(p.Magnitude, p.Position); err != nil {
			return nil, err
		}
	}
	for _, u := range meta.UDLs {
		if err := b.AddUDL(u.Intensity, u.Start, u.End); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	prof, err := st.LoadProfile(args[0])
	if err != nil {
		return err
	}
	if len(prof) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("span: %.2f m, %d samples\n\n", meta.Length, len(prof))

	b, err := rebuild(meta)
	if err == nil {
		fmt.Println(diagram.FBD(b, &beam.Reactions{Ra: meta.Ra, Rb: meta.Rb}))
	}

	fmt.Println(diagram.SFD(prof, 80, 10))
	fmt.Println()
	fmt.Println(diagram.BMD(prof, 80, 10))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	prof, err := st.LoadProfile(args[0])
	if err != nil {
		return err
	}
	return export.ProfileCSV(os.Stdout, prof)
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	prof, err := st.LoadProfile(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, prof)
}

func exportSVGRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	prof, err := st.LoadProfile(args[0])
	if err != nil {
		return err
	}

	svg := export.ProfileSVG(prof, 900, 600)
	if svg == "" {
		return fmt.Errorf("profile too short to render")
	}

	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func exportDiagram(cmd *cobra.Command, args []string) error {
	b, n, err := buildBeam(cmd)
	if err != nil {
		return err
	}
	res, err := b.Solve(n)
	if err != nil {
		return err
	}
	if err := plotimg.ExportDiagrams(res.Profile, outFile); err != nil {
		return err
	}
	fmt.Printf("wrote diagrams next to %s\n", outFile)
	return nil
}

func writeReport(cmd *cobra.Command, args []string) error {
	b, n, err := buildBeam(cmd)
	if err != nil {
		return err
	}
	res, err := b.Solve(n)
	if err != nil {
		return err
	}
	if err := report.WriteFile(outFile, b, res); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}
