package assert

import "fmt"

// NotNil panics when value is nil, `what` names the value in the message.
func NotNil(value any, what string) {
	if value == nil {
		panic(fmt.Sprintf("expected %s to be not nil", what))
	}
}
