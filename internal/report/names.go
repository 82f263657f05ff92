// Package report turns manifest list items and classified diffs into the
// figures, orderings and tables shown to readers.
package report

import (
	"slices"
	"strings"

	"github.com/itssimple/manifest-report-site/internal/models"
)

// CleanDefinitionName strips the table path decoration from a diff file
// name: /tables/DestinyInventoryItemDefinition.json becomes InventoryItem.
func CleanDefinitionName(fileName string) string {
	name := strings.Replace(fileName, "/tables/Destiny", "", 1)
	return strings.Replace(name, "Definition.json", "", 1)
}

// junkDefinitions are tables with little reader value; they are shown
// de-emphasized.
var junkDefinitions = []string{
	"RewardItemList",
	"SackRewardItemList",
	"SandboxPattern",
	"Unlock",
	"MaterialRequirementSet",
	"NodeStepSummary",
	"ArtDyeChannel",
	"ArtDyeReference",
	"ProgressionMapping",
	"RewardSource",
	"UnlockValue",
	"RewardMapping",
	"RewardSheet",
	"ActivityInteractable",
	"EntitlementOffer",
	"PlatformBucketMapping",
	"PresentationNodeBase",
	"CharacterCustomizationCategory",
	"CharacterCustomizationOption",
	"RewardAdjusterProgressionMap",
	"UnlockCountMapping",
	"UnlockEvent",
	"UnlockExpressionMapping",
	"RewardAdjusterPointer",
	"InventoryItemLite",
}

// IsJunkDefinition reports whether fileName names a de-emphasized table.
func IsJunkDefinition(fileName string) bool {
	return slices.Contains(junkDefinitions, CleanDefinitionName(fileName))
}

// FindDiffFile returns the change summary of the named definition table,
// matched by its cleaned name.
func FindDiffFile(item models.ManifestListItem, definition string) (models.DiffFile, bool) {
	for _, f := range item.DiffFiles {
		if CleanDefinitionName(f.FileName) == definition {
			return f, true
		}
	}
	return models.DiffFile{}, false
}
