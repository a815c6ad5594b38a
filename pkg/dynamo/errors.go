package dynamo

import (
	"errors"

	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// IsConditionalCheckFailed reports whether the error is a DynamoDB
// conditional-write rejection, e.g. a guarded state transition that
// already happened.
func IsConditionalCheckFailed(err error) bool {
	var ccf *ddbtypes.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// IsNotFound reports whether the error is the missing-item sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
