package util

type Envelope map[string]any

// Error builds the wire error body. Clients key off "message".
func Error(message string) Envelope {
	return Envelope{"message": message}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}
