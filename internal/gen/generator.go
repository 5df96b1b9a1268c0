package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/laggycomputer/env-vars-struct/internal/schema"
)

// Config holds configuration for code generation.
type Config struct {
	// PackageName is the name of the package the file is generated into.
	PackageName string
	// OutputDir is the directory where the generated file is written.
	OutputDir string
	// Filename is the generated file name.
	Filename string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		PackageName:      "config",
		OutputDir:        "./generated",
		Filename:         "env_vars.go",
		GenerateComments: true,
	}
}

// Generator generates Go code from a derived record schema.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	if config.Filename == "" {
		config.Filename = "env_vars.go"
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "env_vars.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate produces the single generated source file for the given records.
// Record order is preserved as given; the schema builder already guarantees
// children-first, deterministically sorted output, so generating twice from
// the same input yields byte-identical files.
func (g *Generator) Generate(records []schema.Record) (*GeneratedFile, error) {
	data := g.buildTemplateData(records)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid
		// debugging. Unformatted output usually means a name in the input
		// did not normalize to a valid identifier.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the file template.
type templateData struct {
	PackageName      string
	Filename         string
	GenerateComments bool
	// NeedsLookup is true when any record has a leaf field, pulling in the
	// fmt and os imports.
	NeedsLookup bool
	Records     []recordData
}

// recordData represents one generated record type.
type recordData struct {
	TypeName    string
	Constructor string
	Comment     string
	IsRoot      bool
	Fields      []fieldData
}

// fieldData represents a single field of a generated record.
type fieldData struct {
	Name      string
	TypeExpr  string
	IsLeaf    bool
	SourceKey string
	ChildCtor string
}

// buildTemplateData constructs the template data from the record schema.
func (g *Generator) buildTemplateData(records []schema.Record) *templateData {
	data := &templateData{
		PackageName:      g.config.PackageName,
		Filename:         g.config.Filename,
		GenerateComments: g.config.GenerateComments,
	}

	for _, rec := range records {
		rd := recordData{
			TypeName:    rec.TypeName,
			Constructor: constructorName(rec),
			IsRoot:      rec.IsRoot,
		}

		if g.config.GenerateComments {
			rd.Comment = recordComment(rec)
		}

		for _, f := range rec.Fields {
			fd := fieldData{Name: f.Name}

			switch f.Kind {
			case schema.FieldLeaf:
				fd.IsLeaf = true
				fd.TypeExpr = "string"
				fd.SourceKey = f.SourceKey
				data.NeedsLookup = true

			case schema.FieldNested:
				fd.TypeExpr = f.ChildType
				fd.ChildCtor = "new" + f.ChildType
			}

			rd.Fields = append(rd.Fields, fd)
		}

		data.Records = append(data.Records, rd)
	}

	return data
}

// constructorName returns the initializer name for a record. The root
// constructor is exported; nested constructors are implementation detail.
func constructorName(rec schema.Record) string {
	if rec.IsRoot {
		return "New" + rec.TypeName
	}

	return "new" + rec.TypeName
}

func recordComment(rec schema.Record) string {
	if rec.IsRoot {
		return fmt.Sprintf("%s is the generated configuration root.", rec.TypeName)
	}

	return fmt.Sprintf("%s holds the values under the %s namespace.", rec.TypeName, rec.Path)
}

// fileTemplate renders the whole generated file. Local variable names are
// derived from field indices so leaf lookups and nested constructor calls
// can mix freely within one constructor body.
var fileTemplate = template.Must(template.New("envstruct").Parse(`// Code generated by envstruct. DO NOT EDIT.

package {{.PackageName}}

{{if .NeedsLookup}}
import (
	"fmt"
	"os"
)
{{end}}
{{range $r := .Records}}
{{if $r.Comment}}// {{$r.Comment}}
{{end}}type {{$r.TypeName}} struct {
{{range $f := $r.Fields}}	{{$f.Name}} {{$f.TypeExpr}}
{{end}}}

{{if and $.GenerateComments $r.IsRoot}}// {{$r.Constructor}} resolves every declared variable and returns the fully
// populated configuration. It fails with an error naming the first missing
// variable; no partial value is ever returned.
{{end}}func {{$r.Constructor}}() ({{$r.TypeName}}, error) {
	out := {{$r.TypeName}}{}
{{range $i, $f := $r.Fields}}{{if $f.IsLeaf}}
	v{{$i}}, ok := os.LookupEnv({{printf "%q" $f.SourceKey}})
	if !ok {
		return {{$r.TypeName}}{}, fmt.Errorf("environment variable %s not found", {{printf "%q" $f.SourceKey}})
	}
	out.{{$f.Name}} = v{{$i}}
{{else}}
	n{{$i}}, err := {{$f.ChildCtor}}()
	if err != nil {
		return {{$r.TypeName}}{}, err
	}
	out.{{$f.Name}} = n{{$i}}
{{end}}{{end}}
	return out, nil
}
{{if $r.IsRoot}}
{{if $.GenerateComments}}// Must{{$r.TypeName}} is like {{$r.Constructor}} but panics on a missing variable.
{{end}}func Must{{$r.TypeName}}() {{$r.TypeName}} {
	out, err := {{$r.Constructor}}()
	if err != nil {
		panic(err)
	}

	return out
}
{{end}}{{end}}`))
