// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line runtime of the session client.
//
// It wires configuration, the optional session store, the API client and the
// session service into a single process that authenticates, runs one command
// and prints its result as JSON.
package client
