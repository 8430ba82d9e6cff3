// gxtool is a CLI utility for converting GX geometry descriptions into
// triangle-list vertex/index buffers.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/gxgeom/internal/config"
	"github.com/Faultbox/gxgeom/internal/logger"
	"github.com/Faultbox/gxgeom/pkg/formats"
	"github.com/Faultbox/gxgeom/pkg/geometry"
	"github.com/Faultbox/gxgeom/pkg/gx"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	var code int
	switch command {
	case "info":
		code = cmdInfo(args)
	case "build", "b":
		code = cmdBuild(cfg, args)
	case "validate", "check":
		code = cmdValidate(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		code = 1
	}

	if code != 0 {
		logger.Sync()
		os.Exit(code)
	}
}

func printUsage() {
	fmt.Println(`gxtool - GX geometry modernizer

Usage:
  gxtool [flags] <command> [options]

Commands:
  info <file.gxd>                 Show attribute pools and shapes
  build [-v] <file.gxd>           Convert to triangle lists and print shape ranges
  validate <file.gxd>...          Convert and check the output buffers

Flags:
  -config <path>                  Config file (.yaml or .toml)
  -debug                          Enable debug logging
  -log-file <path>                Also log to a rotating file
  -index-format uint16|uint32     Index buffer width
  -no-matrix-index                Keep Position.W from the pool
  -no-validate                    Skip output validation after build

Examples:
  gxtool info model.gxd.yaml
  gxtool -index-format uint16 build model.gxd.yaml
  gxtool validate models/*.gxd.yaml`)
}

func cmdInfo(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: gxtool info <file.gxd>")
		return 1
	}

	g, err := formats.ParseGXDFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("File:    %s\n", args[0])
	fmt.Printf("Shapes:  %d\n", len(g.Shapes))
	fmt.Println()
	fmt.Println("Attribute pools:")
	for a := gx.AttributePosition; a < gx.AttributeCount; a++ {
		if n := g.Attributes.PoolLen(a); n > 0 {
			fmt.Printf("  %-10s %d\n", a, n)
		}
	}

	fmt.Println()
	fmt.Println("Shapes:")
	for i, s := range g.Shapes {
		prims := make(map[gx.PrimitiveType]int)
		verts := 0
		for _, p := range s.Primitives {
			prims[p.Type]++
			verts += len(p.Vertices)
		}

		fmt.Printf("  [%d] %s\n", i, shapeName(&s))
		fmt.Printf("      attributes: %s\n", joinAttributes(s.Attributes))
		fmt.Printf("      vertices:   %d\n", verts)
		for _, line := range primitiveSummary(prims) {
			fmt.Printf("      %s\n", line)
		}
	}
	return 0
}

func cmdBuild(cfg *config.Config, args []string) int {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Print every flat vertex")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: gxtool build [-v] <file.gxd>")
		return 1
	}

	g, err := modernize(cfg, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	stats := g.Stats()
	fmt.Printf("File:       %s\n", fs.Arg(0))
	fmt.Printf("Triangles:  %d\n", stats.Triangles)
	fmt.Printf("Indices:    %d (%s)\n", stats.Indices, cfg.Build.IndexFormat)
	fmt.Printf("Vertices:   %d unique, %d reused\n", stats.UniqueVertices, stats.ReusedVertices)
	fmt.Printf("Buffer:     %.2f KB vertices, stride %d\n",
		float64(stats.UniqueVertices*geometry.FlatVertexStride)/1024, geometry.FlatVertexStride)
	fmt.Println()
	fmt.Println("Shapes:")
	for i := range g.Shapes {
		s := &g.Shapes[i]
		offset, count := s.VertexOffsetAndCount()
		fmt.Printf("  [%d] %-16s offset %-6d count %-6d center (%.3f, %.3f, %.3f)\n",
			i, shapeName(s), offset, count, s.CenterOfMass[0], s.CenterOfMass[1], s.CenterOfMass[2])
	}

	if *verbose {
		fmt.Println()
		fmt.Println("Vertices:")
		for i, v := range g.Vertices {
			fmt.Printf("  %5d pos %v nrm %v c0 %v t0 %v\n", i, v.Position, v.Normal, v.Colors[0], v.TexCoords[0])
		}
	}
	return 0
}

func cmdValidate(cfg *config.Config, args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: gxtool validate <file.gxd>...")
		return 1
	}

	// Validation is the point of this command.
	cfg.Build.Validate = true

	failed := 0
	for _, path := range args {
		if _, err := modernize(cfg, path); err != nil {
			fmt.Printf("FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("ok   %s\n", path)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "\n(%d of %d files failed)\n", failed, len(args))
		return 1
	}
	return 0
}

// modernize loads a description and converts it with the configured options.
func modernize(cfg *config.Config, path string) (*geometry.Geometry, error) {
	opts, err := cfg.BuildOptions(logger.Log.With(zap.String("file", path)))
	if err != nil {
		return nil, err
	}

	g, err := formats.ParseGXDFile(path)
	if err != nil {
		return nil, err
	}

	if err := g.Modernize(opts); err != nil {
		logger.Error("conversion failed", zap.String("file", path), zap.Error(err))
		return nil, err
	}

	if cfg.Build.Validate {
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("output check: %w", err)
		}
	}
	return g, nil
}

func shapeName(s *geometry.Shape) string {
	if name, ok := s.UserData.(string); ok && name != "" {
		return name
	}
	return "(unnamed)"
}

func joinAttributes(attrs []gx.Attribute) string {
	names := make([]string, len(attrs))
	for i, a := range attrs {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}

func primitiveSummary(prims map[gx.PrimitiveType]int) []string {
	var lines []string
	for typ, count := range prims {
		lines = append(lines, fmt.Sprintf("%-13s %d", typ.String()+":", count))
	}
	sort.Strings(lines)
	return lines
}
