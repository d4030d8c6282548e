package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wifiqr/wifiqr-go/pkg/network"
)

func (a *app) encodeCmd() *cobra.Command {
	var (
		name     string
		ssid     string
		password string
		hidden   bool
		identity string
		anon     string
		eap      string
		phase2   string
	)

	cmd := &cobra.Command{
		Use:   "encode <scheme>",
		Short: "Encode one network",
		Long: `Encode one network and print its payload.

Scheme is one of nopass, wep, wpa or wpa2-eap. Only the flags given on the
command line are passed on, so --password "" sets an empty password while
leaving --password out reports it as missing.`,
		Example: `  wifiqr encode wpa --ssid HomeNetwork --password 'P@ss;word'
  wifiqr encode nopass --ssid Guest --hidden`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := network.Network{Name: name, Scheme: args[0], Hidden: hidden}

			flags := cmd.Flags()
			if flags.Changed("ssid") {
				n.SSID = &ssid
			}
			if flags.Changed("password") {
				n.Password = &password
			}
			if flags.Changed("identity") {
				n.Identity = &identity
			}
			if flags.Changed("anonymous-identity") {
				n.AnonymousIdentity = &anon
			}
			n.EAP = eap
			n.Phase2 = phase2

			events, err := a.eventLogger()
			if err != nil {
				return err
			}
			res := network.NewEncoder("cli", events).EncodeNetwork(n)
			if !res.OK() {
				return res.Err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Payload)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&name, "name", "", "network name recorded in the event log")
	f.StringVar(&ssid, "ssid", "", "network SSID")
	f.StringVar(&password, "password", "", "network password")
	f.BoolVar(&hidden, "hidden", false, "network does not broadcast its SSID")
	f.StringVar(&identity, "identity", "", "EAP identity (wpa2-eap)")
	f.StringVar(&anon, "anonymous-identity", "", "EAP anonymous identity (wpa2-eap)")
	f.StringVar(&eap, "eap", "", "EAP method (wpa2-eap): AKA, AKA_PRIME, PEAP, PWD, SIM, TLS, TTLS, UNAUTH_TLS, WAPI_CERT")
	f.StringVar(&phase2, "phase2", "", "phase 2 method (wpa2-eap): AKA, AKA_PRIME, GTC, MSCHAP, MSCHAPV2, PAP, SIM")
	return cmd
}
