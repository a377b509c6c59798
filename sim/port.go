package sim

// Port is a byte source fed from the other end of the wire. Write
// queues bytes for the firmware; ReadByte blocks until one arrives,
// matching the behavior of a UART receive register.
type Port struct {
	ch chan byte
}

func NewPort() *Port {
	return &Port{ch: make(chan byte, 256)}
}

func (p *Port) Available() int {
	return len(p.ch)
}

func (p *Port) ReadByte() byte {
	return <-p.ch
}

// Write implements io.Writer for the host side of the port.
func (p *Port) Write(data []byte) (int, error) {
	for _, b := range data {
		p.ch <- b
	}
	return len(data), nil
}
