package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/compose"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/drafting"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/drive"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/render"
)

// Worker runs one generation job end to end: draft pending items, compose
// the document tree, render the docx and optionally push it to Drive.
type Worker struct {
	lucia *drafting.LucIAClient
	drive *drive.Client
	log   *slog.Logger

	maxConcurrentDraft int
}

func NewWorker(lucia *drafting.LucIAClient, dr *drive.Client, log *slog.Logger, maxDraft int) *Worker {
	return &Worker{
		lucia:              lucia,
		drive:              dr,
		log:                log,
		maxConcurrentDraft: maxDraft,
	}
}

// Process runs the full generation pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID)
	hadErrors := false

	// Phase 1: draft agenda items that carry a summary but no final text.
	req := job.Request()
	var pending []int
	for i, item := range req.AgendaItems {
		if item.FinalText == "" && item.Summary != "" {
			pending = append(pending, i)
		}
	}
	job.SetTotalItems(len(pending))

	if len(pending) > 0 && w.lucia == nil {
		log.Warn("drafting unavailable, items left pending", "items", len(pending))
		job.AddError("drafting not configured; items keep their summaries")
		hadErrors = true
	} else if len(pending) > 0 {
		job.SetStatus(StatusDrafting, "drafting")

		type draftResult struct {
			idx  int
			text string
			err  error
		}
		results := make(chan draftResult, len(pending))
		sem := make(chan struct{}, w.maxConcurrentDraft)

		for _, idx := range pending {
			sem <- struct{}{}
			go func(idx int) {
				defer func() { <-sem }()
				item := req.AgendaItems[idx]
				prompt := drafting.BuildPrompt(item)
				meetingContext := drafting.BuildContext(req, item)

				var text string
				var lastErr error
				for attempt := 0; attempt < MaxRetries; attempt++ {
					text, lastErr = w.lucia.Draft(ctx, prompt, meetingContext)
					if lastErr == nil || !IsRetryable(lastErr) {
						break
					}
					log.Warn("retryable drafting error", "item", idx, "attempt", attempt, "error", lastErr)
					select {
					case <-time.After(Backoff(attempt)):
					case <-ctx.Done():
						results <- draftResult{idx: idx, err: ctx.Err()}
						return
					}
				}
				results <- draftResult{idx: idx, text: text, err: lastErr}
			}(idx)
		}

		for range pending {
			r := <-results
			job.IncrItemsDrafted()
			if r.err != nil {
				log.Error("drafting failed", "item", r.idx, "error", r.err)
				job.AddError(fmt.Sprintf("item %d: %s", r.idx, r.err))
				hadErrors = true
				continue
			}
			job.setItemText(r.idx, r.text)
		}
		log.Info("drafting complete", "items", len(pending), "errors", hadErrors)
	}

	// Phase 2: compose. Items that failed drafting keep their placeholder.
	job.SetStatus(StatusComposing, "composing")
	tree := compose.Compose(job.Request())

	// Phase 3: render.
	job.SetStatus(StatusRendering, "rendering")
	data, err := render.DOCX(tree, render.DefaultStyle())
	if err != nil {
		log.Error("render failed", "error", err)
		job.AddError(fmt.Sprintf("render: %s", err))
		job.SetStatus(StatusFailed, "rendering")
		return
	}
	fileName := compose.FileName(job.Request())
	job.SetResult(fileName, data)

	// Phase 4: optional Drive upload.
	if job.uploadToDrive {
		job.SetStatus(StatusUploading, "uploading")
		switch {
		case w.drive == nil || !w.drive.Configured():
			job.AddError("google drive not configured")
			hadErrors = true
		case !w.drive.Connected():
			job.AddError("google drive not connected")
			hadErrors = true
		default:
			res, err := w.drive.Upload(ctx, fileName, job.folderID, data)
			if err != nil {
				log.Error("drive upload failed", "error", err)
				job.AddError(fmt.Sprintf("drive: %s", err))
				hadErrors = true
			} else {
				job.SetDriveLink(res.WebViewLink)
				log.Info("uploaded to drive", "file_id", res.FileID)
			}
		}
	}

	if hadErrors {
		job.SetStatus(StatusPartial, "done")
	} else {
		job.SetStatus(StatusCompleted, "done")
	}
}
