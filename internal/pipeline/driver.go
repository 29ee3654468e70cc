// Package pipeline composes the per-file driver (§4.5): read → fatal
// evaluate (abort) → non-fatal evaluate → build RoadSpaces → build
// CityGML → write. A Pool runs this driver over many files concurrently
// (§5).
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rtron-go/rtron/internal/citygml"
	"github.com/rtron-go/rtron/internal/config"
	"github.com/rtron-go/rtron/internal/evaluator"
	"github.com/rtron-go/rtron/internal/mathx"
	"github.com/rtron-go/rtron/internal/opendrive/reader"
	"github.com/rtron-go/rtron/internal/report"
	"github.com/rtron-go/rtron/internal/roadspaces"
)

// CodeCancelled is the report code for a run stopped by the host's
// cancellation signal (§5): "a cancelled run produces no output file and
// a Cancelled report entry".
const CodeCancelled = "Cancelled"

// Run executes the full pipeline for one input file and, unless cancelled
// or aborted on a fatal violation, writes the resulting CityGML model via
// w to outDir. The returned MessageList holds every message produced
// before the return (it is empty when the file can't be read or parsed);
// the error is non-nil only for I/O/parse failures the report format
// can't itself express as a diagnostic.
func Run(ctx context.Context, path string, cfg config.Options, w citygml.Writer, outDir string, log *logrus.Entry) (report.MessageList, error) {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	log = log.WithField("file", path)

	var msgs report.MessageList

	data, err := os.ReadFile(path)
	if err != nil {
		return msgs, fmt.Errorf("pipeline: read %q: %w", path, err)
	}

	m, err := reader.Parse(bytes.NewReader(data))
	if err != nil {
		return msgs, fmt.Errorf("pipeline: parse %q: %w", path, err)
	}

	fatalMsgs := evaluator.EvaluateFatalViolations(m)
	msgs = msgs.Merge(fatalMsgs)
	if fatalMsgs.HasFatal() {
		log.WithField("fatal_count", fatalMsgs.CountBySeverity(report.SeverityFatal)).Warn("aborting: fatal violations found")
		return msgs, nil
	}

	if cancelled, cmsgs := checkCancelled(ctx); cancelled {
		return msgs.Merge(cmsgs), nil
	}

	healed, nonFatalMsgs := evaluator.EvaluateNonFatalViolations(m, evaluator.Config{SkipRoadShapeRemoval: cfg.SkipRoadShapeRemoval})
	msgs = msgs.Merge(nonFatalMsgs)

	if cancelled, cmsgs := checkCancelled(ctx); cancelled {
		return msgs.Merge(cmsgs), nil
	}

	rm, rsMsgs := roadspaces.Build(ctx, healed, roadspaces.BuildConfig{
		DiscretizationStepSize: cfg.DiscretizationStepSize,
		DistanceTolerance:      cfg.DistanceTolerance,
	})
	msgs = msgs.Merge(rsMsgs)
	if rsMsgs.HasFatal() {
		log.Warn("aborting: unresolved roadspace references")
		return msgs, nil
	}

	if cancelled, cmsgs := checkCancelled(ctx); cancelled {
		return msgs.Merge(cmsgs), nil
	}

	cm, cmMsgs := citygml.Build(rm, citygml.Config{
		Visitor: mathx.VisitorConfig{
			DiscretizationStepSize:      cfg.DiscretizationStepSize,
			SweepDiscretizationStepSize: cfg.SweepDiscretizationStepSize,
			CircleSlices:                cfg.CircleSlices,
		},
		GenerateRandomGeometryIDs:     cfg.GenerateRandomGeometryIds,
		MappingBackwardsCompatibility: cfg.MappingBackwardsCompatibility,
	})
	msgs = msgs.Merge(cmMsgs)

	if cancelled, cmsgs := checkCancelled(ctx); cancelled {
		return msgs.Merge(cmsgs), nil
	}

	targetPath := outputPath(outDir, path)
	writtenPath, err := w.Write(cm, targetPath)
	if err != nil {
		return msgs, fmt.Errorf("pipeline: write %q: %w", targetPath, err)
	}

	log.WithFields(logrus.Fields{
		"roads":    len(cm.Roads),
		"out":      writtenPath,
		"fatal":    msgs.CountBySeverity(report.SeverityFatal),
		"warnings": msgs.CountBySeverity(report.SeverityWarning),
	}).Info("converted")

	return msgs, nil
}

// checkCancelled reports whether ctx has been cancelled and, if so, the
// Cancelled diagnostic to append (§5).
func checkCancelled(ctx context.Context) (bool, report.MessageList) {
	select {
	case <-ctx.Done():
		return true, report.MessageList{}.Reported(CodeCancelled, ctx.Err().Error(), report.SourceID{}, report.SeverityInfo)
	default:
		return false, nil
	}
}

// outputPath derives the CityGML output path for an input file, keeping
// its base name and swapping the extension (§4.5 "persisted next to the
// output").
func outputPath(outDir, inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(outDir, base+".gml")
}
