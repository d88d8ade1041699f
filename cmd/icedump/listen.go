package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/leporel/OvenMediaEngine/internal/logging"
	"github.com/leporel/OvenMediaEngine/tcpmux"
)

var listenAddress string

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Accept TCP connections and print every packet the demultiplexer extracts",
	RunE:  runListen,
}

func init() {
	listenCmd.Flags().StringVarP(&listenAddress, "address", "l", ":3478", "address to listen on")
}

func runListen(cmd *cobra.Command, args []string) error {
	ln, err := net.Listen("tcp", listenAddress)
	if err != nil {
		return err
	}
	defer ln.Close()

	log.Infof("icedump: listening on %s", ln.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	osSigs := make(chan os.Signal, 1)
	signal.Notify(osSigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-osSigs
		cancel()
		_ = ln.Close()
	}()

	var wg sync.WaitGroup
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				break
			}
			log.Errorf("icedump: accept: %v", err)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			handleConn(ctx, conn)
		}()
	}

	wg.Wait()
	return nil
}

func handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	peer := conn.RemoteAddr()
	logger := logging.New("icedump:" + peer.String())
	demux := tcpmux.New(tcpmux.WithLogger(logger))

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, err := conn.Read(buf)
		if n > 0 {
			if critErr := demux.Append(buf[:n]); critErr != nil {
				log.Errorf("icedump: %s: critical framing error: %v", peer, critErr)
				return
			}
			for demux.HasPacket() {
				pkt, _ := demux.PopPacket()
				log.Infof("icedump: %s: %s packet, %d bytes, channel=0x%04x", peer, pkt.Type, len(pkt.Payload), pkt.ChannelNumber)
			}
		}
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				log.Debugf("icedump: %s: connection closed: %v", peer, err)
			}
			return
		}
	}
}
