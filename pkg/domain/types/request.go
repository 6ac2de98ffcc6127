package types

import "github.com/google/uuid"

type RequestID string

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

// ParseRequestID accepts a caller supplied request ID only when it is a UUID
func ParseRequestID(s string) (RequestID, bool) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", false
	}
	return RequestID(id.String()), true
}

func (x RequestID) String() string {
	return string(x)
}
