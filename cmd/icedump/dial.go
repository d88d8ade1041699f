package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/leporel/OvenMediaEngine/internal/logging"
	"github.com/leporel/OvenMediaEngine/tcpmux"
)

var dialAddress string

var dialCmd = &cobra.Command{
	Use:   "dial",
	Short: "Dial a remote peer, reconnecting with backoff, and print every packet extracted",
	RunE:  runDial,
}

func init() {
	dialCmd.Flags().StringVarP(&dialAddress, "address", "a", "", "address to dial")
	_ = dialCmd.MarkFlagRequired("address")
}

func runDial(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	osSigs := make(chan os.Signal, 1)
	signal.Notify(osSigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-osSigs
		cancel()
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := dialOnce(ctx); err != nil {
			log.Errorf("icedump: connection to %s ended: %v", dialAddress, err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// dialOnce connects once, retrying the dial itself with exponential
// backoff, then reads until the connection drops or ctx is cancelled.
func dialOnce(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 0 // keep retrying until ctx is cancelled

	var conn net.Conn
	err := backoff.Retry(func() error {
		c, err := (&net.Dialer{}).DialContext(ctx, "tcp", dialAddress)
		if err != nil {
			log.Debugf("icedump: dial %s: %v, retrying", dialAddress, err)
			return err
		}
		conn = c
		return nil
	}, backoff.WithContext(b, ctx))
	if err != nil {
		return err
	}
	defer conn.Close()

	log.Infof("icedump: connected to %s", conn.RemoteAddr())

	logger := logging.New("icedump:dial")
	demux := tcpmux.New(tcpmux.WithLogger(logger))

	buf := make([]byte, 4096)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		_ = conn.SetReadDeadline(time.Now().Add(30 * time.Second))
		n, err := conn.Read(buf)
		if n > 0 {
			if critErr := demux.Append(buf[:n]); critErr != nil {
				return critErr
			}
			for demux.HasPacket() {
				pkt, _ := demux.PopPacket()
				log.Infof("icedump: %s packet, %d bytes, channel=0x%04x", pkt.Type, len(pkt.Payload), pkt.ChannelNumber)
			}
		}
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			return err
		}
	}
}
