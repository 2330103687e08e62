package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/loam"

	loamadapter "github.com/aretw0/graft/pkg/adapters/loam"
)

// starterConfig is the graft.toml written next to the generated plans.
const starterConfig = `# Project defaults for plan documents that leave them blank.
policy = "overwrite"

# Uncomment to make every plan fail validation on member collisions.
# strict = true
`

func main() {
	targetDir := "plans"
	if len(os.Args) > 1 {
		targetDir = os.Args[1]
	}

	// Ensure dir exists
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		panic(err)
	}

	fmt.Printf("Generating starter plans in: %s\n", targetDir)

	// Init Loam (No Versioning = pure file generation)
	repo, err := loam.Init(targetDir, loam.WithVersioning(false))
	if err != nil {
		panic(err)
	}

	typedRepo := loam.NewTypedRepository[loamadapter.PlanMetadata](repo)
	ctx := context.TODO()

	// 1. Author: two behaviors whose initializers chain onto a person.
	author := loamadapter.PlanMetadata{
		Version: 1,
		Policy:  "chain",
		Target: map[string]any{
			"name": "person",
			"members": []map[string]any{
				{"name": "initialize", "method": "person.init"},
			},
		},
		Behaviors: []map[string]any{
			{
				"name": "HasBooks",
				"members": []map[string]any{
					{"name": "initialize", "method": "books.init"},
					{"name": "addBook", "method": "books.add"},
					{"name": "books", "method": "books.list"},
				},
			},
			{
				"name": "HasChildren",
				"members": []map[string]any{
					{"name": "initialize", "method": "children.init"},
					{"name": "addChild", "method": "children.add"},
					{"name": "numberOfChildren", "method": "children.count"},
				},
			},
		},
	}
	err = typedRepo.Save(ctx, &loam.DocumentModel[loamadapter.PlanMetadata]{
		ID:      "author",
		Content: "Composes authorship and parenthood onto a person.",
		Data:    author,
	})
	check(err)

	// 2. Gadget: a member collision the default policy resolves by overwrite.
	gadget := loamadapter.PlanMetadata{
		Version: 1,
		Target: map[string]any{
			"name": "gadget",
		},
		Behaviors: []map[string]any{
			{
				"name": "Battery",
				"members": []map[string]any{
					{"name": "power", "value": "battery"},
					{"name": "charge", "method": "battery.charge"},
				},
			},
			{
				"name": "Solar",
				"members": []map[string]any{
					{"name": "power", "value": "solar"},
				},
			},
		},
	}
	err = typedRepo.Save(ctx, &loam.DocumentModel[loamadapter.PlanMetadata]{
		ID:      "gadget",
		Content: "Demonstrates a conflict: both behaviors supply 'power'.",
		Data:    gadget,
	})
	check(err)

	// 3. Project config next to the plans.
	err = os.WriteFile(filepath.Join(targetDir, "graft.toml"), []byte(starterConfig), 0644)
	check(err)

	fmt.Println("Done. Verify contents in", targetDir)
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
