package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"repoclone/internal/color"
	"repoclone/internal/ext"
	logger "repoclone/internal/log"
	"repoclone/internal/manifest"
)

type Options struct {
	Policy       Policy
	QueryTimeout time.Duration // zero means DefaultQueryTimeout
	CloneTimeout time.Duration // zero means DefaultCloneTimeout
}

// Synchronizer clones the repositories of a manifest that are not yet present in OutputFolder.
type Synchronizer struct {
	OutputFolder string
	// OnOutcome, when set, receives every outcome as soon as it is recorded.
	OnOutcome func(Outcome)

	vcs          VCS
	classifier   Classifier
	cloneTimeout time.Duration
}

func NewSynchronizer(vcs VCS, outputFolder string, options Options) *Synchronizer {
	return &Synchronizer{
		OutputFolder: outputFolder,
		vcs:          vcs,
		classifier: Classifier{
			VCS:          vcs,
			Policy:       options.Policy,
			QueryTimeout: ext.DefaultValue(options.QueryTimeout, DefaultQueryTimeout),
		},
		cloneTimeout: ext.DefaultValue(options.CloneTimeout, DefaultCloneTimeout),
	}
}

// Sync runs one synchronization pass in manifest order. Only Absent entries are cloned;
// a failed entry never stops the pass. Cancelling ctx stops the pass before the next entry
// and returns the outcomes recorded so far together with the context error.
func (s *Synchronizer) Sync(ctx context.Context, descriptors []manifest.Descriptor) ([]Outcome, error) {
	if err := os.MkdirAll(s.OutputFolder, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output folder %s: %w", s.OutputFolder, err)
	}

	outcomes := make([]Outcome, 0, len(descriptors))
	for _, descriptor := range descriptors {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		outcome := s.syncRepository(ctx, descriptor)
		outcomes = append(outcomes, outcome)
		if s.OnOutcome != nil {
			s.OnOutcome(outcome)
		}
	}
	return outcomes, nil
}

func (s *Synchronizer) syncRepository(ctx context.Context, descriptor manifest.Descriptor) Outcome {
	repoPath, err := Locate(s.OutputFolder, descriptor.Name)
	if err != nil {
		logger.Log.Errorf("Cannot place %s: %v", color.FgRed("%s", descriptor.Name), err)
		return Outcome{Descriptor: descriptor, Kind: Failed, Reason: err.Error()}
	}

	result := s.classifier.Classify(ctx, repoPath, descriptor.URL)
	outcome := Outcome{Descriptor: descriptor, Path: repoPath, Classification: result}

	switch result.Kind {
	case Matched:
		logger.Log.Debugf("Git repository %s already exists at %s, skipping clone", descriptor.Name, repoPath)
		outcome.Kind = Skipped
		outcome.Reason = "already present"
	case Conflict:
		logger.Log.Warnf("Leaving %s untouched: %s", repoPath, result.Reason)
		outcome.Kind = Skipped
		outcome.Reason = result.Reason
	default:
		if err := s.clone(ctx, descriptor, repoPath); err != nil {
			logger.Log.Errorf("Failed to clone project %s: %v", descriptor.Name, err)
			outcome.Kind = Failed
			outcome.Reason = err.Error()
		} else {
			outcome.Kind = Cloned
		}
	}
	return outcome
}

func (s *Synchronizer) clone(ctx context.Context, descriptor manifest.Descriptor, repoPath string) error {
	logger.Log.Infof("Cloning %s to %s", descriptor.Name, repoPath)

	cloneCtx, cancel := withTimeout(ctx, s.cloneTimeout)
	defer cancel()
	err := s.vcs.Clone(cloneCtx, descriptor.URL, repoPath)
	if err == nil {
		return nil
	}
	if errors.Is(cloneCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		err = fmt.Errorf("clone timed out after %s: %w", s.cloneTimeout, err)
	}

	// The path was absent before this attempt, so anything there now is the clone's leftover.
	if _, statErr := os.Lstat(repoPath); !errors.Is(statErr, fs.ErrNotExist) {
		if removeErr := os.RemoveAll(repoPath); removeErr != nil {
			logger.Log.Errorf("Failed to remove partial clone %s: %v", repoPath, removeErr)
		}
	}
	return err
}

// Inspection is the classification of one descriptor without any cloning.
type Inspection struct {
	Descriptor manifest.Descriptor
	Path       string
	Result     ClassificationResult
	Err        error // set when the descriptor cannot be placed in the output folder
}

// Check classifies every descriptor against OutputFolder without changing anything.
func (s *Synchronizer) Check(ctx context.Context, descriptors []manifest.Descriptor) ([]Inspection, error) {
	inspections := make([]Inspection, 0, len(descriptors))
	for _, descriptor := range descriptors {
		if err := ctx.Err(); err != nil {
			return inspections, err
		}
		inspection := Inspection{Descriptor: descriptor}
		repoPath, err := Locate(s.OutputFolder, descriptor.Name)
		if err != nil {
			inspection.Err = err
		} else {
			inspection.Path = repoPath
			inspection.Result = s.classifier.Classify(ctx, repoPath, descriptor.URL)
		}
		inspections = append(inspections, inspection)
	}
	return inspections, nil
}
