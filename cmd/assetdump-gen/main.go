// Command assetdump-gen generates UnmarshalDump methods for annotated Go
// structs, so typed decoding does not go through the dynamic document tree.
//
// Usage:
//
//	assetdump-gen -package ./pkg/navmesh -types NavMeshData,NavMeshTileData -output dump_generated.go
package main

import (
	"flag"
	"fmt"
	"go/types"
	"log"
	"os"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/assetforge/assetdump/codegen"
)

func main() {
	var (
		packagePath = flag.String("package", "", "Go package path to analyze")
		typeNames   = flag.String("types", "", "Comma-separated list of type names to generate code for")
		outputFile  = flag.String("output", "", "Output file path for generated code")
		verbose     = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	if *packagePath == "" {
		log.Fatal("Package path is required (-package)")
	}
	if *typeNames == "" {
		log.Fatal("Type names are required (-types)")
	}
	if *outputFile == "" {
		log.Fatal("Output file is required (-output)")
	}

	if *verbose {
		log.Printf("Analyzing package: %s", *packagePath)
		log.Printf("Looking for types: %s", *typeNames)
		log.Printf("Output file: %s", *outputFile)
	}

	cfg := &packages.Config{
		Mode: packages.NeedTypes | packages.NeedTypesInfo | packages.NeedSyntax | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, *packagePath)
	if err != nil {
		log.Fatalf("Failed to load package %s: %v", *packagePath, err)
	}

	if len(pkgs) == 0 {
		log.Fatalf("No packages found for %s", *packagePath)
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		for _, err := range pkg.Errors {
			log.Printf("Package error: %v", err)
		}
		log.Fatalf("Package %s has errors", *packagePath)
	}

	if *verbose {
		log.Printf("Successfully loaded package: %s", pkg.Name)
	}

	requestedTypes := strings.Split(*typeNames, ",")
	for i, typeName := range requestedTypes {
		requestedTypes[i] = strings.TrimSpace(typeName)
	}

	// Resolve the requested types in the package scope, keeping the
	// requested order so the output is stable.
	generator := codegen.NewGenerator(pkg.Name)
	scope := pkg.Types.Scope()

	for _, typeName := range requestedTypes {
		obj := scope.Lookup(typeName)
		if obj == nil {
			log.Fatalf("Type %s not found in package %s", typeName, *packagePath)
		}

		typeObj, ok := obj.(*types.TypeName)
		if !ok {
			log.Fatalf("Object %s is not a type in package %s", typeName, *packagePath)
		}

		def, err := codegen.ParseType(typeObj.Type())
		if err != nil {
			log.Fatalf("Failed to analyze type %s: %v", typeName, err)
		}
		generator.Add(def)

		if *verbose {
			log.Printf("Found type: %s", typeName)
		}
	}

	if *verbose {
		log.Printf("Generating code...")
	}

	generatedCode, err := generator.Generate()
	if err != nil {
		log.Fatalf("Failed to generate code: %v", err)
	}

	if *verbose {
		log.Printf("Writing output to %s", *outputFile)
	}

	err = os.WriteFile(*outputFile, generatedCode, 0644)
	if err != nil {
		log.Fatalf("Failed to write output file %s: %v", *outputFile, err)
	}

	if *verbose {
		log.Printf("Successfully generated %d bytes of code for %d types", len(generatedCode), len(requestedTypes))
	} else {
		fmt.Printf("Generated dump decoders for %d types in %s\n", len(requestedTypes), *outputFile)
	}
}
