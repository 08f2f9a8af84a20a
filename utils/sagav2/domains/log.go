package domains

import "time"

//noinspection ALL
const (
	LogTypeStartSaga SagaState = iota
	LogTypeSagaStepExec
	LogTypeSagaAbort
	LogTypeSagaStepCompensate
	LogTypeSagaComplete
)

type SagaState int

func (st SagaState) ToString() string {
	var data = []string{"LogTypeStartSaga", "LogTypeSagaStepExec", "LogTypeSagaAbort", "LogTypeSagaStepCompensate", "LogTypeSagaComplete"}
	if int(st) < 0 || int(st) >= len(data) {
		return "Unknown"
	}
	return data[st]
}

// Log is one entry of a saga execution journal.
type Log struct {
	ExecutionID  string        `json:"execution_id"`
	State        SagaState     `json:"state"`
	Time         time.Time     `json:"time"`
	StepNumber   int           `json:"step_number"`
	StepName     string        `json:"step_name,omitempty"`
	StepError    string        `json:"step_error,omitempty"`
	StepDuration time.Duration `json:"step_duration"`
}
