package applications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bomapay-gateway/utils/sagav2/domains"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Saga runs steps in order. When a step fails, the failed step and every step before it are
// compensated in reverse order.
type Saga struct {
	ExecutionID string
	steps       []*domains.Step
	Logger      *zap.Logger
	Ctx         context.Context

	mu   sync.Mutex
	logs []domains.Log
}

type Result struct {
	ExecutionError   error
	CompensateErrors []error
	FailedStep       string
}

func NewCoordinator(id string, ctx context.Context, logger *zap.Logger) *Saga {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Saga{
		ExecutionID: id,
		Logger:      logger.With(zap.String("saga", id)),
		Ctx:         ctx,
	}
}

func (sg *Saga) WithStep(step *domains.Step) *Saga {
	sg.steps = append(sg.steps, step)
	step.Index = len(sg.steps) - 1
	return sg
}

func (sg *Saga) appendLog(log domains.Log) {
	log.ExecutionID = sg.ExecutionID
	log.Time = time.Now()

	sg.mu.Lock()
	sg.logs = append(sg.logs, log)
	sg.mu.Unlock()

	sg.Logger.With(zapcore.Field{
		Key:       "saga_log",
		Type:      zapcore.ReflectType,
		Interface: log,
	}).Debug(log.State.ToString())
}

// Logs returns a copy of the execution journal.
func (sg *Saga) Logs() []domains.Log {
	sg.mu.Lock()
	defer sg.mu.Unlock()
	return append([]domains.Log(nil), sg.logs...)
}

func (sg *Saga) Play() (res *Result) {
	res = &Result{}
	sg.appendLog(domains.Log{State: domains.LogTypeStartSaga})

	for _, step := range sg.steps {
		if err := sg.Ctx.Err(); err != nil {
			res.ExecutionError = err
			res.FailedStep = step.Name
			sg.appendLog(domains.Log{State: domains.LogTypeSagaAbort, StepNumber: step.Index, StepName: step.Name, StepError: err.Error()})
			res.CompensateErrors = sg.compensate(step.Index - 1)
			return res
		}

		start := time.Now()
		err := step.Func(sg.Ctx)
		lg := domains.Log{
			State:        domains.LogTypeSagaStepExec,
			StepNumber:   step.Index,
			StepName:     step.Name,
			StepDuration: time.Since(start),
		}
		if err != nil {
			lg.StepError = err.Error()
			sg.appendLog(lg)
			sg.Logger.With(zapcore.Field{
				Key:       "err_step" + fmt.Sprint(step.Index) + "_saga" + sg.ExecutionID,
				Type:      zapcore.ReflectType,
				Interface: err.Error(),
			}).Warn("saga step failed")

			res.ExecutionError = err
			res.FailedStep = step.Name
			res.CompensateErrors = sg.compensate(step.Index)
			return res
		}
		sg.appendLog(lg)
	}

	sg.appendLog(domains.Log{State: domains.LogTypeSagaComplete, StepNumber: len(sg.steps)})
	return res
}

// compensate undoes steps from index `from` down to 0. Compensation keeps going after an error.
// It runs on a context detached from cancellation so an aborted saga still cleans up.
func (sg *Saga) compensate(from int) (errs []error) {
	ctx := withoutCancel(sg.Ctx)
	for i := from; i >= 0; i-- {
		step := sg.steps[i]
		if step.CompensateFunc == nil {
			continue
		}
		lg := domains.Log{State: domains.LogTypeSagaStepCompensate, StepNumber: i, StepName: step.Name}
		if err := step.CompensateFunc(ctx); err != nil {
			lg.StepError = err.Error()
			errs = append(errs, fmt.Errorf("compensate %s: %w", step.Name, err))
			sg.Logger.With(zapcore.Field{
				Key:       "err_compensate_saga",
				Type:      zapcore.ReflectType,
				Interface: err.Error(),
			}).Error("saga compensation failed")
		}
		sg.appendLog(lg)
	}
	sg.appendLog(domains.Log{State: domains.LogTypeSagaComplete, StepNumber: len(sg.steps)})
	return errs
}

type detachedContext struct {
	parent context.Context
}

func (detachedContext) Deadline() (time.Time, bool) {
	return time.Time{}, false
}

func (detachedContext) Done() <-chan struct{} {
	return nil
}

func (detachedContext) Err() error {
	return nil
}

func (d detachedContext) Value(key interface{}) interface{} {
	return d.parent.Value(key)
}

func withoutCancel(parent context.Context) context.Context {
	return detachedContext{parent: parent}
}
