package materialize

import (
	"context"

	"github.com/arthur-debert/distro/pkg/errors"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
)

// runStep executes step as a synthfs operation. Rollback stays off: a
// failed step keeps whatever earlier steps wrote.
func (m *Materializer) runStep(ctx context.Context, step Step, plan Plan, result *Result) error {
	var stepErr error
	op := m.sfs.CustomOperationWithID(step.Name(), func(ctx context.Context, _ filesystem.FileSystem) error {
		stepErr = step.Run(m, plan, result)
		return stepErr
	})

	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = false

	res, err := synthfs.RunWithOptions(ctx, m.pipelineFS, options, op)
	m.logOperations(res)

	// the step's own error keeps its code
	if stepErr != nil {
		return stepErr
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "step %s failed", step.Name()).
			WithDetail("step", step.Name())
	}

	result.Steps = append(result.Steps, step.Name())
	return nil
}

func (m *Materializer) logOperations(res *synthfs.Result) {
	if res == nil {
		return
	}
	for _, r := range res.GetOperations() {
		opResult, ok := r.(synthfs.OperationResult)
		if !ok {
			continue
		}
		event := m.logger.Debug().
			Str("step", string(opResult.OperationID)).
			Interface("status", opResult.Status)
		if opResult.Error != nil {
			event = event.Err(opResult.Error)
		}
		event.Msg("Step finished")
	}
}
