// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/eqledgerd/messagebus"
	"github.com/bitmark-inc/eqledgerd/util"
	"github.com/bitmark-inc/eqledgerd/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
	heartbeatInterval    = 60 * time.Second
	heartbeatCommand     = "heart"
)

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// frames: event name, block number, JSON event data
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string) error {
	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	listen := make([]*util.Connection, 0, len(broadcast))
	for i, address := range broadcast {
		c, err := util.NewConnection(address)
		if nil != err {
			log.Errorf("invalid broadcast[%d]: %q  error: %s", i, address, err)
			return err
		}
		listen = append(listen, c)
	}

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, listen)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}
	brdc.socket4 = socket4
	brdc.socket6 = socket6

	return nil
}

// Run - forward every bus message until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log

	log.Info("starting…")

	queue := messagebus.Bus.Broadcast.Chan(-1)
	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-heartbeat.C:
			brdc.send(heartbeatCommand, [][]byte{[]byte(time.Now().UTC().Format(time.RFC3339))})
		case item, ok := <-queue:
			if !ok {
				break loop
			}
			log.Debugf("sending: %s", item.Command)
			brdc.send(item.Command, item.Parameters)
		}
	}

	log.Info("shutting down…")
	if nil != brdc.socket4 {
		_ = brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		_ = brdc.socket6.Close()
	}
	log.Info("stopped")
}

func (brdc *broadcaster) send(command string, parameters [][]byte) {
	frames := make([]interface{}, 0, 1+len(parameters))
	frames = append(frames, command)
	for _, p := range parameters {
		frames = append(frames, p)
	}

	for _, socket := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == socket {
			continue
		}
		if _, err := socket.SendMessage(frames...); nil != err {
			brdc.log.Errorf("send: %s  error: %s", command, err)
		}
	}
}
