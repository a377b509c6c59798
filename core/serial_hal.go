package core

// ByteSource is the receive side of the command channel. ReadByte
// blocks until a byte arrives; there is no timeout, so a command whose
// argument bytes never come stalls the interpreter until the host
// finishes the field. Available reports how many bytes can be read
// without blocking.
type ByteSource interface {
	Available() int
	ReadByte() byte
}
