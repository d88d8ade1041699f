package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/leporel/OvenMediaEngine/candidate"
)

var candidateCmd = &cobra.Command{
	Use:   "candidate [line...]",
	Short: "Parse one or more SDP candidate lines and print their decoded fields",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCandidate,
}

func runCandidate(cmd *cobra.Command, args []string) error {
	var errs error
	for _, line := range args {
		c, err := candidate.Parse(line)
		if err != nil {
			log.Errorf("icedump: %q: %v", line, err)
			errs = multierror.Append(errs, err)
			continue
		}
		printCandidate(c)
	}
	return errs
}

func printCandidate(c *candidate.IceCandidate) {
	fmt.Printf("foundation=%s component=%d transport=%s priority=%d type=%s addr=%s:%d",
		c.Foundation, c.ComponentID, c.Transport, c.Priority, c.CandidateType, c.ConnectionAddress, c.Port)
	if c.HasRelatedAddress() {
		fmt.Printf(" related=%s:%d", c.RelAddr, c.RelPort)
	}
	if c.IsTCP() {
		fmt.Printf(" tcptype=%s", c.TCPType)
	}
	fmt.Println()
	fmt.Println("  " + c.String())
}
