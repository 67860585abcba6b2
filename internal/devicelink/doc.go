// Package devicelink provides the simulated wireless link between a
// caller and each room's in-room controller.
//
// Every room has exactly one link that moves through a three-state
// machine: disconnected → connecting → connected. Transitions are driven
// by fixed configured delays rather than a real transport: Connect takes
// ~1s, Disconnect ~0.5s, and a command round-trip ~0.7s by default.
//
// The simulator guarantees:
//
//   - no two transitions ever overlap on one room id
//   - SendCommand on a non-connected link is rejected without mutation
//   - observers see the intermediate status messages ("Connecting...",
//     "Sending: OPEN_DOOR...") during the delay window
//
// Operations are not cancellable; once initiated they run to completion.
package devicelink
