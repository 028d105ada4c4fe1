package usecase

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/advancedcpp/drillbox/internal/domain"
	"github.com/advancedcpp/drillbox/internal/ports"
)

// ExecuteDrill runs d once and packages the outcome as a Report. Drill
// output is always captured into the report; when stream is non-nil it is
// additionally forwarded there as it is produced.
func ExecuteDrill(ctx context.Context, d ports.Drill, p domain.Params, stream io.Writer) domain.Report {
	var buf bytes.Buffer
	out := io.Writer(&buf)
	if stream != nil {
		out = io.MultiWriter(stream, &buf)
	}

	started := time.Now()
	data, err := d.Run(ctx, p, out)
	ended := time.Now()

	rep := domain.Report{
		DrillID:   d.Info().ID,
		StartedAt: started,
		EndedAt:   ended,
		LatencyMS: ended.Sub(started).Milliseconds(),
		Output:    buf.String(),
		Data:      data,
	}
	if rep.Data == nil {
		rep.Data = map[string]any{}
	}
	if err != nil {
		rep.Error = domain.NewRunError(err)
	}
	return rep
}
