// meta/meta.go
package meta

import "time"

// MATCHES defines the number of matches per test agent and opponent pair.
// Every match is two games from the same opening.
const MATCHES = 5

// TIME_LIMIT defines how long an agent may think about a move.
const TIME_LIMIT = 150 * time.Millisecond

// CONCURRENCY defines the number of games played at the same time. Searches
// are single threaded, but parallel games compete for CPU and may time out.
const CONCURRENCY = 1

const BOARD_WIDTH = 7
const BOARD_HEIGHT = 7

// OUTPUT_DIR is where tournament results are written.
const OUTPUT_DIR = "results"
