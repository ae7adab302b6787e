package terminalView

import (
	"fmt"

	"repoclone/internal/gitrepo"
	"repoclone/internal/manifest"
)

// Tally labels, in the order summaries list them.
var (
	SyncLabels    = []string{"cloned", "already present", "conflicts", "failed"}
	CheckLabels   = []string{"cloned", "not cloned", "conflicts", "invalid"}
	StatusLabels  = []string{"clean", "dirty", "unknown"}
	ExtractLabels = []string{"extracted", "skipped"}
)

func SyncEntry(outcome gitrepo.Outcome) Entry {
	name := outcome.Descriptor.Name
	switch outcome.Kind {
	case gitrepo.Cloned:
		return Entry{Label: "cloned", Level: LevelSuccess, Text: fmt.Sprintf("Cloned %s successfully.", name)}
	case gitrepo.Skipped:
		if outcome.Classification.Kind == gitrepo.Matched {
			return Entry{Label: "already present", Level: LevelWarning,
				Text: fmt.Sprintf("Repository %s is already cloned with matching remote URL. Skipping.", name)}
		}
		return Entry{Label: "conflicts", Level: LevelWarning,
			Text: fmt.Sprintf("Repository %s left untouched: %s", name, outcome.Reason)}
	default:
		return Entry{Label: "failed", Level: LevelError, Text: fmt.Sprintf("Failed to clone %s: %s", name, outcome.Reason)}
	}
}

func InspectionEntry(inspection gitrepo.Inspection) Entry {
	name := inspection.Descriptor.Name
	if inspection.Err != nil {
		return Entry{Label: "invalid", Level: LevelError, Text: fmt.Sprintf("Repository %s: %v", name, inspection.Err)}
	}
	switch inspection.Result.Kind {
	case gitrepo.Matched:
		return Entry{Label: "cloned", Level: LevelSuccess,
			Text: fmt.Sprintf("Repository %s is already cloned with matching remote URL.", name)}
	case gitrepo.Conflict:
		return Entry{Label: "conflicts", Level: LevelWarning,
			Text: fmt.Sprintf("Repository %s conflicts: %s", name, inspection.Result.Reason)}
	default:
		return Entry{Label: "not cloned", Level: LevelWarning, Text: fmt.Sprintf("Repository %s is not cloned.", name)}
	}
}

func StatusEntry(report gitrepo.StatusReport) Entry {
	name := report.Descriptor.Name
	switch report.Category {
	case gitrepo.Clean:
		return Entry{Label: "clean", Level: LevelSuccess, Text: fmt.Sprintf("Repository %s: %s", name, report.Summary)}
	case gitrepo.Dirty:
		return Entry{Label: "dirty", Level: LevelWarning, Text: fmt.Sprintf("Repository %s: %s", name, report.Summary)}
	default:
		return Entry{Label: "unknown", Level: LevelError, Text: fmt.Sprintf("Failed to check status for repository %s: %v", name, report.Err)}
	}
}

func ExtractedEntry(descriptor manifest.Descriptor) Entry {
	return Entry{Label: "extracted", Level: LevelSuccess, Text: fmt.Sprintf("Found %s (%s)", descriptor.Name, descriptor.URL)}
}

func ExtractSkippedEntry(failure gitrepo.ExtractFailure) Entry {
	return Entry{Label: "skipped", Level: LevelError, Text: fmt.Sprintf("Skipped %s: %v", failure.Path, failure.Err)}
}
