package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/scenekit/internal/assemble"
	"github.com/san-kum/scenekit/internal/config"
	"github.com/san-kum/scenekit/internal/scene"
	"github.com/san-kum/scenekit/internal/storage"
	"github.com/san-kum/scenekit/internal/viz"
	"github.com/san-kum/scenekit/internal/watch"
	"github.com/san-kum/scenekit/internal/xmltree"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	// Mesh body flags
	meshCfg = scene.DefaultMeshConfig()
	springs []string
	docCfg  = scene.DefaultDocumentConfig()
	// Build flags
	preset  string
	outFile string
	noSave  bool
	// Inspect flags
	brief     bool
	plotWidth int
)

var logger = log.New(os.Stderr, "scenekit: ", 0)

// main registers the scenekit commands and flags and executes the root
// command, exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "scenekit",
		Short:        "rigid body scene authoring",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".scenekit", "data directory")

	meshCmd := &cobra.Command{
		Use:   "mesh [obj]",
		Short: "build a single mesh body and print its scene",
		Args:  cobra.ExactArgs(1),
		RunE:  buildMesh,
	}
	meshCmd.Flags().StringVar(&meshCfg.Name, "name", meshCfg.Name, "body name")
	meshCmd.Flags().StringVar(&meshCfg.Position, "position", meshCfg.Position, "position (x y z)")
	meshCmd.Flags().StringVar(&meshCfg.Orientation, "orientation", meshCfg.Orientation, "orientation (axis-angle)")
	meshCmd.Flags().StringVar(&meshCfg.Velocity, "velocity", meshCfg.Velocity, "linear velocity")
	meshCmd.Flags().StringVar(&meshCfg.AngularVelocity, "omega", meshCfg.AngularVelocity, "angular velocity")
	meshCmd.Flags().StringVar(&meshCfg.Scale, "scale", meshCfg.Scale, "mesh scale")
	meshCmd.Flags().StringVar(&meshCfg.ST, "st", "", "texture coordinates")
	meshCmd.Flags().BoolVar(&meshCfg.Pinned, "pinned", false, "pin the body in place")
	meshCmd.Flags().BoolVar(&meshCfg.Magnetic, "magnetic", false, "magnetic body")
	meshCmd.Flags().StringVar(&meshCfg.Density, "density", meshCfg.Density, "density")
	meshCmd.Flags().StringVar(&meshCfg.Restitution, "restitution", "", "restitution")
	meshCmd.Flags().StringVar(&meshCfg.Friction, "friction", "", "friction")
	meshCmd.Flags().StringVar(&meshCfg.Color, "color", "", "color (r g b)")
	meshCmd.Flags().StringArrayVar(&springs, "spring", nil, `spring, e.g. "pB=0 0 0;k=50;d=5;pW=0 5 0" (repeatable)`)
	meshCmd.Flags().StringVar(&docCfg.Gravity, "gravity", docCfg.Gravity, "scene gravity")
	meshCmd.Flags().StringVar(&docCfg.Dt, "dt", docCfg.Dt, "scene timestep")

	buildCmd := &cobra.Command{
		Use:   "build [recipe.yaml]",
		Short: "build a scene from a recipe or preset",
		Args:  cobra.MaximumNArgs(1),
		RunE:  buildRecipe,
	}
	buildCmd.Flags().StringVar(&preset, "preset", "", "use preset recipe")
	buildCmd.Flags().StringVarP(&outFile, "output", "o", "", "also write the scene xml to this file")
	buildCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the build in the data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list builds",
		RunE:  listBuilds,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [build_id]",
		Short: "show a stored scene",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectBuild,
	}
	inspectCmd.Flags().BoolVar(&brief, "brief", false, "only show element names")
	inspectCmd.Flags().IntVar(&plotWidth, "width", 60, "stiffness plot width")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available preset recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch [recipe.yaml]",
		Short: "rebuild a recipe every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE:  watchRecipe,
	}
	watchCmd.Flags().StringVarP(&outFile, "output", "o", "", "scene xml output file")

	rootCmd.AddCommand(meshCmd, buildCmd, listCmd, inspectCmd, presetsCmd, watchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildMesh(cmd *cobra.Command, args []string) error {
	root := scene.NewDocument(docCfg)
	mesh, err := scene.NewMeshBody(root, scene.General{}, args[0], meshCfg)
	if err != nil {
		return err
	}

	for _, raw := range springs {
		spec, err := config.ParseSpring(raw)
		if err != nil {
			return err
		}
		s := spec.Spring()
		if s.PartialPair() {
			logger.Printf("spring %q: body2 and pB2 must be given together, pairing dropped", raw)
		}
		mesh.AddSpring(s)
	}

	return xmltree.Encode(os.Stdout, root, "  ")
}

func loadRecipe(args []string) (*config.Recipe, string, error) {
	if preset != "" {
		r := config.GetPreset(preset)
		if r == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return r, "preset:" + preset, nil
	}
	if len(args) == 0 {
		return nil, "", fmt.Errorf("need a recipe file or --preset")
	}
	r, err := config.Load(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("failed to load recipe: %w", err)
	}
	return r, args[0], nil
}

func buildRecipe(cmd *cobra.Command, args []string) error {
	r, source, err := loadRecipe(args)
	if err != nil {
		return err
	}

	res, err := build(r)
	if err != nil {
		return err
	}

	s := viz.Summarize(res.Root)
	fmt.Println(viz.RenderSummary(r.Name, s))

	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		buildID, err := st.Save(r.Name, res.Root, storage.BuildMetadata{
			Source:   source,
			Bodies:   s.Bodies,
			Springs:  res.SpringCount(),
			Warnings: res.Warnings,
		})
		if err != nil {
			return err
		}
		fmt.Printf("build id: %s\n", buildID)
	}

	return nil
}

// build assembles r and writes the -o file when one is set.
func build(r *config.Recipe) (*assemble.Result, error) {
	res, err := assemble.Build(r, scene.General{})
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		logger.Print(w)
	}

	if outFile != "" {
		if err := xmltree.WriteFile(outFile, res.Root); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func listBuilds(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	builds, err := st.List()
	if err != nil {
		return err
	}

	if len(builds) == 0 {
		fmt.Println("no builds found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tBODIES\tSPRINGS\tSOURCE")

	for _, b := range builds {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			b.ID,
			b.Name,
			b.Timestamp.Format("2006-01-02 15:04:05"),
			b.Bodies,
			b.Springs,
			b.Source,
		)
	}

	return w.Flush()
}

func inspectBuild(cmd *cobra.Command, args []string) error {
	buildID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(buildID)
	if err != nil {
		return err
	}

	root, err := st.LoadScene(buildID)
	if err != nil {
		return err
	}

	fmt.Printf("build: %s\n", meta.ID)
	fmt.Printf("source: %s\n", meta.Source)
	fmt.Printf("file: %s\n\n", st.ScenePath(buildID))
	fmt.Println(viz.RenderSummary(meta.Name, viz.Summarize(root)))
	fmt.Println()
	fmt.Print(viz.RenderTree(root, brief))

	if plot := viz.StiffnessPlot(viz.Stiffness(root), plotWidth); plot != "" {
		fmt.Println()
		fmt.Println(plot)
	}

	for _, w := range meta.Warnings {
		fmt.Println(viz.Warning.Render("warning: ") + w)
	}
	return nil
}

func watchRecipe(cmd *cobra.Command, args []string) error {
	path := args[0]
	if outFile == "" {
		outFile = strings.TrimSuffix(path, filepath.Ext(path)) + ".xml"
	}

	rebuild := func() {
		r, err := config.Load(path)
		if err != nil {
			logger.Printf("load %s: %v", path, err)
			return
		}
		res, err := build(r)
		if err != nil {
			logger.Printf("build %s: %v", path, err)
			return
		}
		logger.Printf("wrote %s (%d bodies, %d springs)", outFile, len(res.Bodies), res.SpringCount())
	}
	rebuild()

	// Watch the directory so editors that replace the file on save are seen.
	w, err := watch.New(filepath.Dir(path))
	if err != nil {
		return err
	}
	defer w.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	target, _ := filepath.Abs(path)
	for {
		select {
		case changed, ok := <-w.Events:
			if !ok {
				return nil
			}
			if abs, _ := filepath.Abs(changed); abs != target {
				continue
			}
			rebuild()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Printf("watch: %v", err)
		case <-sig:
			return nil
		}
	}
}
