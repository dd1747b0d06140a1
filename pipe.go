// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package moona

import (
	"context"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// pipeCapacity is the bounded capacity of each pipe direction.
// Large enough to hold a full request or response without the peer
// draining in between.
const pipeCapacity = 16

// Pipe is the server side of an in-memory connection. It implements
// Transport over bounded lock-free SPSC queues from lfq.
//
// Receive and Send are non-blocking: they return iox.ErrWouldBlock when
// the peer has not yet produced or consumed.
type Pipe struct {
	recvQ  *lfq.SPSC[Event]
	sendQ  *lfq.SPSC[Event]
	slot   Event
	serial Serial
}

// Peer is the client side of an in-memory connection.
// Push and Pull are non-blocking like the Pipe side.
type Peer struct {
	recvQ  *lfq.SPSC[Event]
	sendQ  *lfq.SPSC[Event]
	slot   Event
	serial Serial
}

// pipePair holds both ends and their queues in a single allocation.
type pipePair struct {
	server Pipe
	client Peer
	up     lfq.SPSC[Event]
	down   lfq.SPSC[Event]
}

// NewPipe creates a connected in-memory transport pair.
// The Pipe is handed to the server; the Peer plays the client.
// Each side must be used by a single goroutine.
func NewPipe() (*Pipe, *Peer) {
	s := nextSerial()

	pair := &pipePair{}
	pair.up.Init(pipeCapacity)
	pair.down.Init(pipeCapacity)

	pair.server = Pipe{recvQ: &pair.up, sendQ: &pair.down, serial: s}
	pair.client = Peer{recvQ: &pair.down, sendQ: &pair.up, serial: s}
	return &pair.server, &pair.client
}

// Serial returns the serial number shared by both ends of the pipe.
func (p *Pipe) Serial() Serial {
	return p.serial
}

// Receive dequeues the next event pushed by the peer.
func (p *Pipe) Receive(context.Context) (Event, error) {
	return p.recvQ.Dequeue()
}

// Send enqueues ev for the peer.
func (p *Pipe) Send(_ context.Context, ev Event) error {
	p.slot = ev
	return p.sendQ.Enqueue(&p.slot)
}

// Serial returns the serial number shared by both ends of the pipe.
func (p *Peer) Serial() Serial {
	return p.serial
}

// Push enqueues ev for the server.
func (p *Peer) Push(ev Event) error {
	p.slot = ev
	return p.sendQ.Enqueue(&p.slot)
}

// Pull dequeues the next event sent by the server.
func (p *Peer) Pull() (Event, error) {
	return p.recvQ.Dequeue()
}

// Write pushes ev, backing off while the queue is full until ctx is done.
func (p *Peer) Write(ctx context.Context, ev Event) error {
	var bo iox.Backoff
	for {
		err := p.Push(ev)
		if !iox.IsWouldBlock(err) {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		bo.Wait()
	}
}

// Read pulls the next event, backing off while the queue is empty until
// ctx is done.
func (p *Peer) Read(ctx context.Context) (Event, error) {
	var bo iox.Backoff
	for {
		ev, err := p.Pull()
		if !iox.IsWouldBlock(err) {
			return ev, err
		}
		if err := ctx.Err(); err != nil {
			return Event{}, err
		}
		bo.Wait()
	}
}

// Drain pulls every event currently queued by the server.
func (p *Peer) Drain() []Event {
	var out []Event
	for {
		ev, err := p.Pull()
		if err != nil {
			return out
		}
		out = append(out, ev)
	}
}
