package errors

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	AWSCode    string `json:"aws_code,omitempty"`
	AWSMessage string `json:"aws_message,omitempty"`
	AWSFault   string `json:"aws_fault,omitempty"`
}

// Dump flattens an error chain for structured logging, surfacing AWS
// service error metadata when present.
func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		d.AWSCode = apiErr.ErrorCode()
		d.AWSMessage = apiErr.ErrorMessage()
		d.AWSFault = apiErr.ErrorFault().String()
	}

	return d
}
