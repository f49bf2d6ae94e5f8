package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"textractkit/pkg/textract"
)

func wireStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// enumValues lists every model enumeration by type name.
func enumValues() map[string][]string {
	return map[string][]string{
		"BlockType":         wireStrings(textract.BlockType("").Values()),
		"ContentClassifier": wireStrings(textract.ContentClassifier("").Values()),
		"EntityType":        wireStrings(textract.EntityType("").Values()),
		"FeatureType":       wireStrings(textract.FeatureType("").Values()),
		"JobStatus":         wireStrings(textract.JobStatus("").Values()),
		"RelationshipType":  wireStrings(textract.RelationshipType("").Values()),
		"SelectionStatus":   wireStrings(textract.SelectionStatus("").Values()),
		"TextType":          wireStrings(textract.TextType("").Values()),
		"ValueType":         wireStrings(textract.ValueType("").Values()),
	}
}

func enumsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "enums [name]",
		Short: "Print the wire values of the model enumerations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all := enumValues()
			if len(args) == 0 {
				return writeJSON(cmd, all)
			}
			values, ok := all[args[0]]
			if !ok {
				names := make([]string, 0, len(all))
				for name := range all {
					names = append(names, name)
				}
				sort.Strings(names)
				return fmt.Errorf("unknown enum %q (known: %v)", args[0], names)
			}
			return writeJSON(cmd, values)
		},
	}
}
