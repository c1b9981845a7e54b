// CabinetForge - parametric cabinet designer and cut-list generator
//
// A command line tool for assembling cabinet designs, deriving their cut
// lists, and writing shop paperwork.
//
// Build:
//   go build -o cabinetforge ./cmd/cabinetforge
//
// Examples:
//   cabinetforge -project kitchen.json -new -template "Base Cabinet" -save
//   cabinetforge -project kitchen.json -import schedule.csv -save
//   cabinetforge -project kitchen.json -cutlist -materials -mode fraction
//   cabinetforge -project kitchen.json -pdf report.pdf -labels labels.pdf

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/piwi3910/cabinetforge/internal/cutlist"
	"github.com/piwi3910/cabinetforge/internal/designer"
	"github.com/piwi3910/cabinetforge/internal/export"
	"github.com/piwi3910/cabinetforge/internal/importer"
	"github.com/piwi3910/cabinetforge/internal/model"
	"github.com/piwi3910/cabinetforge/internal/project"
)

func main() {
	log.SetFlags(0)

	projectPath := flag.String("project", "", "design JSON file to load and operate on")
	newDesign := flag.Bool("new", false, "start from a fresh design instead of loading -project")
	name := flag.String("name", "", "set the project name")
	template := flag.String("template", "", "add a cabinet from the named template")
	importPath := flag.String("import", "", "import cabinets from a CSV or XLSX schedule")
	save := flag.Bool("save", false, "save the design back to -project")
	showCutList := flag.Bool("cutlist", false, "print the cut list")
	showMaterials := flag.Bool("materials", false, "print material, sheet, and cost summaries")
	mode := flag.String("mode", "", "measurement display: both, fraction, or decimal")
	pdfPath := flag.String("pdf", "", "write the cut list report PDF to this path")
	csvPath := flag.String("csv", "", "write the cut list CSV to this path")
	xlsxPath := flag.String("xlsx", "", "write the cut list workbook to this path")
	dxfPath := flag.String("dxf", "", "write the part drawing DXF to this path")
	labelsPath := flag.String("labels", "", "write the part label sheet PDF to this path")
	flag.Parse()

	config, err := project.LoadAppConfigFromDefault()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	displayMode := resolveMode(*mode, config)

	design := loadDesign(*projectPath, *newDesign, config)
	if *name != "" {
		design.Name = *name
	}
	if *template != "" {
		tpl := findTemplate(*template)
		design.Cabinets = append(design.Cabinets, tpl.ToCabinet(tpl.Cabinet.Name))
	}
	if *importPath != "" {
		design.Cabinets = append(design.Cabinets, importCabinets(*importPath)...)
	}

	ds := designer.NewFromDesign(design)
	entries := ds.CutList()
	opts := export.ReportOptions{MeasureMode: displayMode, Currency: config.Currency}

	if *showCutList {
		printCutList(entries, displayMode)
	}
	if *showMaterials {
		printMaterials(ds, opts)
	}

	exported := writeExports(ds, entries, opts, map[string]string{
		"pdf": *pdfPath, "csv": *csvPath, "xlsx": *xlsxPath,
		"dxf": *dxfPath, "labels": *labelsPath,
	})

	if *save {
		if *projectPath == "" {
			log.Fatalf("-save requires -project")
		}
		if err := project.SaveDesign(*projectPath, ds.Design()); err != nil {
			log.Fatalf("save design: %v", err)
		}
		config.RememberDesign(*projectPath)
		if err := project.SaveAppConfigToDefault(config); err != nil {
			log.Fatalf("save config: %v", err)
		}
		fmt.Printf("Saved %s\n", *projectPath)
	}

	if !*showCutList && !*showMaterials && !exported {
		printSummary(ds, opts)
	}
}

// loadDesign resolves the working design: a fresh one seeded from the
// config defaults, or the file at path. A missing file also starts fresh
// so a new project path can be saved on first use.
func loadDesign(path string, fresh bool, config model.AppConfig) model.Design {
	if fresh || path == "" {
		d := model.NewDesign()
		config.ApplyToDesign(&d)
		return d
	}
	d, err := project.LoadDesign(path)
	if err != nil {
		log.Fatalf("load design: %v", err)
	}
	return d
}

// resolveMode picks the measurement display mode: the flag wins, then the
// saved preference, then both notations.
func resolveMode(s string, config model.AppConfig) model.MeasureMode {
	if s == "" {
		if config.MeasureMode != "" {
			return config.MeasureMode
		}
		return model.MeasureBoth
	}
	m := model.MeasureMode(s)
	switch m {
	case model.MeasureBoth, model.MeasureFraction, model.MeasureDecimal:
		return m
	}
	log.Fatalf("unknown mode %q (use both, fraction, or decimal)", s)
	return model.MeasureBoth
}

// findTemplate looks the name up in the saved templates, then the
// built-ins, matching name or id.
func findTemplate(name string) model.CabinetTemplate {
	store, err := project.LoadDefaultTemplates()
	if err != nil {
		log.Fatalf("load templates: %v", err)
	}
	if t := store.FindByName(name); t != nil {
		return *t
	}
	if t := store.FindByID(name); t != nil {
		return *t
	}
	builtins := model.BuiltinTemplates()
	for _, t := range builtins {
		if t.Name == name || t.ID == name {
			return t
		}
	}

	available := store.Names()
	for _, t := range builtins {
		available = append(available, t.Name)
	}
	log.Fatalf("unknown template %q (available: %s)", name, strings.Join(available, ", "))
	return model.CabinetTemplate{}
}

// importCabinets reads a cabinet schedule, reporting row problems without
// aborting the run unless nothing imports at all.
func importCabinets(path string) []model.Cabinet {
	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		result = importer.ImportCSV(path)
	case ".xlsx":
		result = importer.ImportExcel(path)
	default:
		log.Fatalf("unsupported import format %q (use .csv or .xlsx)", filepath.Ext(path))
	}

	for _, w := range result.Warnings {
		log.Printf("import: %s", w)
	}
	for _, e := range result.Errors {
		log.Printf("import: %s", e)
	}
	if len(result.Cabinets) == 0 {
		log.Fatalf("no cabinets imported from %s", path)
	}
	fmt.Printf("Imported %d cabinets from %s\n", len(result.Cabinets), path)
	return result.Cabinets
}

// writeExports runs every requested file export and reports whether any
// output was written.
func writeExports(ds *designer.Designer, entries []model.CutListEntry, opts export.ReportOptions, paths map[string]string) bool {
	wrote := false
	write := func(kind, path string, fn func() error) {
		if path == "" {
			return
		}
		if err := fn(); err != nil {
			log.Fatalf("%s export: %v", kind, err)
		}
		fmt.Printf("Wrote %s\n", path)
		wrote = true
	}

	write("pdf", paths["pdf"], func() error {
		return export.ExportPDF(paths["pdf"], ds.Design(), entries, opts)
	})
	write("csv", paths["csv"], func() error {
		return export.ExportCSV(paths["csv"], entries)
	})
	write("xlsx", paths["xlsx"], func() error {
		return export.ExportXLSX(paths["xlsx"], ds.Design(), entries)
	})
	write("dxf", paths["dxf"], func() error {
		return export.ExportDXF(paths["dxf"], entries)
	})
	write("labels", paths["labels"], func() error {
		return export.ExportLabels(paths["labels"], entries)
	})
	return wrote
}

// cell renders a dimension for the text tables, with hardware's zero
// dimensions shown as a dash.
func cell(v float64, mode model.MeasureMode) string {
	if v <= 0 {
		return "-"
	}
	return model.FormatMeasurement(v, mode)
}

func printCutList(entries []model.CutListEntry, mode model.MeasureMode) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCABINET\tPART\tQTY\tWIDTH\tHEIGHT\tTHICK\tMATERIAL\tGRAIN\tEDGEBAND\tNOTE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Sequence, e.CabinetName, e.PartName, e.Quantity,
			cell(e.Width, mode), cell(e.Height, mode), cell(e.Thickness, mode),
			e.Material, e.Grain, e.Edgebanding, e.Note)
	}
	tw.Flush()
	fmt.Println()
}

func printMaterials(ds *designer.Designer, opts export.ReportOptions) {
	design := ds.Design()
	usages := ds.Materials()
	cur := opts.Currency
	if cur == "" {
		cur = "$"
	}

	fmt.Println("Materials")
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MATERIAL\tAREA (SQFT)\tSHEETS\tCOST")
	for _, u := range usages {
		fmt.Fprintf(tw, "%s\t%.1f\t%d\t%s%.2f\n", u.Material, u.AreaSqFt, u.Sheets, cur, u.Cost)
	}
	tw.Flush()
	fmt.Println()

	fmt.Println("Sheet plan")
	tw = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MATERIAL\tTHICK\tPARTS\tAREA (SQFT)\tSHEETS\tWASTE")
	for _, g := range ds.SheetPlan() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f\t%d\t%.1f%%\n",
			g.Material, model.DecimalToFraction(g.Thickness), len(g.Instances),
			g.RawArea/144, g.Sheets, g.WastePercent)
	}
	tw.Flush()
	fmt.Println()

	if banding := ds.Edgebanding(); len(banding) > 0 {
		fmt.Println("Edgebanding")
		tw = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "MATERIAL\tLINEAR FT")
		for _, b := range banding {
			fmt.Fprintf(tw, "%s\t%.1f\n", b.Material, b.LinearFeet)
		}
		tw.Flush()
		fmt.Println()
	}

	materials := cutlist.TotalMaterialCost(usages)
	hours := float64(len(design.Cabinets)) * export.LaborHoursPerCabinet
	labor := hours * design.LaborRate
	fmt.Printf("Material cost: %s%.2f\n", cur, materials)
	fmt.Printf("Labor (%.0f hrs at %s%.2f/hr): %s%.2f\n", hours, cur, design.LaborRate, cur, labor)
	fmt.Printf("Estimated total: %s%.2f\n", cur, materials+labor)
}

func printSummary(ds *designer.Designer, opts export.ReportOptions) {
	design := ds.Design()
	fmt.Printf("%s: %d cabinets\n\n", design.Name, len(design.Cabinets))
	if len(design.Cabinets) == 0 {
		fmt.Println("Add cabinets with -template or -import, then -save.")
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSIZE (W x H x D)\tDOORS\tDRAWERS\tSHELVES\tMATERIAL")
	for _, c := range design.Cabinets {
		size := fmt.Sprintf("%s x %s x %s",
			model.DecimalToFraction(c.Width), model.DecimalToFraction(c.Height), model.DecimalToFraction(c.Depth))
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
			c.Name, size, c.Doors, len(c.Drawers), c.Shelves, c.Material)
	}
	tw.Flush()
	fmt.Println()

	usages := ds.Materials()
	cur := opts.Currency
	if cur == "" {
		cur = "$"
	}
	sheets := 0
	for _, u := range usages {
		sheets += u.Sheets
	}
	fmt.Printf("%d cut list entries, %d sheets, material cost %s%.2f\n",
		len(ds.CutList()), sheets, cur, cutlist.TotalMaterialCost(usages))
}
