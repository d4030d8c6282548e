// Package network describes Wi-Fi networks declaratively and turns them into
// QR payloads.
//
// A network file lists networks in YAML or CBOR:
//
//	version: 1
//	networks:
//	  - name: home
//	    scheme: WPA
//	    ssid: home-5g
//	    password: P@ssw0rd
//	  - name: office
//	    scheme: WPA2-EAP
//	    ssid: corp
//	    identity: alice
//	    anonymous_identity: anonymous
//	    password: secret
//	    eap: PEAP
//	    phase2: MSCHAPV2
//
// Fields that are omitted are never passed to the builder, so a missing ssid
// is reported by the wifiqr validation rules. An empty string is a value.
//
// Encoder processes a whole file and records one log event per network.
package network
