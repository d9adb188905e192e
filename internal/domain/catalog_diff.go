package domain

import (
	"reflect"
	"sort"
)

// CatalogDiff summarizes changes between two snapshots.
type CatalogDiff struct {
	AddedTools       []string `json:"addedTools,omitempty"`
	RemovedTools     []string `json:"removedTools,omitempty"`
	UpdatedTools     []string `json:"updatedTools,omitempty"`
	AddedUseCases    []string `json:"addedUseCases,omitempty"`
	RemovedUseCases  []string `json:"removedUseCases,omitempty"`
	ReorderedUseCase []string `json:"reorderedUseCases,omitempty"`
}

// IsEmpty reports whether the diff contains any changes.
func (d CatalogDiff) IsEmpty() bool {
	return len(d.AddedTools) == 0 &&
		len(d.RemovedTools) == 0 &&
		len(d.UpdatedTools) == 0 &&
		len(d.AddedUseCases) == 0 &&
		len(d.RemovedUseCases) == 0 &&
		len(d.ReorderedUseCase) == 0
}

// DiffSnapshots computes a diff between two snapshots.
func DiffSnapshots(prev Snapshot, next Snapshot) CatalogDiff {
	diff := CatalogDiff{}

	for name, prevTool := range prev.Tools {
		nextTool, ok := next.Tools[name]
		if !ok {
			diff.RemovedTools = append(diff.RemovedTools, name)
			continue
		}
		if !reflect.DeepEqual(prevTool, nextTool) {
			diff.UpdatedTools = append(diff.UpdatedTools, name)
		}
	}
	for name := range next.Tools {
		if _, ok := prev.Tools[name]; !ok {
			diff.AddedTools = append(diff.AddedTools, name)
		}
	}

	for name, prevTools := range prev.UseCases {
		nextTools, ok := next.UseCases[name]
		if !ok {
			diff.RemovedUseCases = append(diff.RemovedUseCases, name)
			continue
		}
		if !stringsEqual(prevTools, nextTools) {
			diff.ReorderedUseCase = append(diff.ReorderedUseCase, name)
		}
	}
	for name := range next.UseCases {
		if _, ok := prev.UseCases[name]; !ok {
			diff.AddedUseCases = append(diff.AddedUseCases, name)
		}
	}

	sort.Strings(diff.AddedTools)
	sort.Strings(diff.RemovedTools)
	sort.Strings(diff.UpdatedTools)
	sort.Strings(diff.AddedUseCases)
	sort.Strings(diff.RemovedUseCases)
	sort.Strings(diff.ReorderedUseCase)

	return diff
}

func stringsEqual(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
