package zabbix

import "strconv"

// Code classifies the outcome of a discovery run. The numeric
// values are part of the output contract via {#EXIT}.
type Code int

const (
	// CodeOK means the run completed and rows follow.
	CodeOK Code = 0
	// CodeError means an API or environment failure; no rows follow.
	CodeError Code = 1
	// CodeReview means the run completed but matched nothing and
	// needs operator attention.
	CodeReview Code = 2
)

var defaultMessages = map[Code]string{
	CodeOK:     "Metricas obtenidas con exito.",
	CodeError:  "Error en la obtencion de metricas.",
	CodeReview: "Informacion sobre ejecucion: revision necesaria.",
}

// Result is the outcome a run hands to the emission layer, which
// alone turns it into a status row.
type Result struct {
	Code Code
	// Message overrides the default message for Code when set.
	Message string
	// Records is the number of discovery rows that follow the
	// status row.
	Records int
}

// OK returns a success Result announcing records rows.
func OK(records int) Result {
	return Result{Code: CodeOK, Records: records}
}

// Err returns a failure Result carrying msg.
func Err(msg string) Result {
	return Result{Code: CodeError, Message: msg}
}

// Review returns a needs-review Result. An empty msg falls back to
// the default review message.
func Review(msg string) Result {
	return Result{Code: CodeReview, Message: msg}
}

// Status is the execution-status row emitted as data[0]. All values
// are strings, matching what the server templates expect.
type Status struct {
	Info      string `json:"{#INFO}"`
	Msg       string `json:"{#MSG}"`
	Exit      string `json:"{#EXIT}"`
	Registros string `json:"{#REGISTROS}"`
}

// Status renders r as a status row identified by info.
func (r Result) Status(info string) Status {
	msg := r.Message
	if msg == "" {
		msg = defaultMessages[r.Code]
	}
	if msg == "" {
		msg = "Mensaje no definido."
	}

	return Status{
		Info:      info,
		Msg:       msg,
		Exit:      strconv.Itoa(int(r.Code)),
		Registros: strconv.Itoa(r.Records),
	}
}
