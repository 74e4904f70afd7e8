// Package config loads destination tables from YAML.
//
//	outputs:
//	  - name: console
//	    type: stdout
//	    level: INFO
//	  - name: card
//	    type: file
//	    path: /mnt/sd/app.log
//	    level: VERBOSE
//	    date: false
//
// Apply builds each output's sink through a Factory and registers it.
// Omitted prefix flags default to true, matching registry.Add.
package config
