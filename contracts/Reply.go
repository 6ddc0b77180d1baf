package contracts

import (
	json "github.com/bytedance/sonic"
	"strings"
)

const ErrorReplyPrefix = "ERROR: "

// Reply is the single response sent back for one command.
type Reply struct {
	Value CellValue
	Error string
}

func NewValueReply(value CellValue) Reply {
	return Reply{Value: value}
}

func NewErrorReply(err error) Reply {
	return Reply{Error: err.Error()}
}

func (r Reply) IsError() bool {
	return r.Error != ""
}

// String is the one-line text form used by line based transports.
func (r Reply) String() string {
	if r.IsError() {
		return ErrorReplyPrefix + strings.ReplaceAll(r.Error, "\n", " ")
	}

	return r.Value.String()
}

type replyJson struct {
	Value *CellValue `json:"value,omitempty"`
	Error string     `json:"error,omitempty"`
}

func (r Reply) MarshalJSON() ([]byte, error) {
	if r.IsError() {
		return json.Marshal(replyJson{Error: r.Error})
	}

	return json.Marshal(replyJson{Value: &r.Value})
}

type RequestDispatcher interface {
	Dispatch(message string) Reply
}
