package game

import "fmt"

//Outcome classifies the result of a single shot. The constant values
//double as the wire tokens exchanged between the two players.
type Outcome string

const (
	OutcomeMiss    Outcome = "miss"
	OutcomeHit     Outcome = "hit"
	OutcomeSunk    Outcome = "hit-sunk"
	OutcomeAllSunk Outcome = "hit-sunk-all"
)

//IsHit returns true if the shot landed on a ship cell.
func (o Outcome) IsHit() bool {
	return o == OutcomeHit || o.IsSunk()
}

//IsSunk returns true if the shot finished off a ship.
func (o Outcome) IsSunk() bool {
	return o == OutcomeSunk || o == OutcomeAllSunk
}

//Board holds one player's view of the game: the own fields as ground
//truth, mutated only by incoming shots, and the enemy fields holding
//what has been learned from outcome reports.
type Board struct {
	ownFields   Grid
	enemyFields Grid
	fleet       *Fleet
	received    map[Position]struct{}
}

//NewBoard builds a board from its serialized form and detects the fleet
//placed on it.
func NewBoard(mapString string) (*Board, error) {
	grid, err := ParseGrid(mapString)
	if err != nil {
		return nil, err
	}
	return &Board{
		ownFields:   grid,
		enemyFields: initGrid(),
		fleet:       DetectFleet(grid),
		received:    make(map[Position]struct{}),
	}, nil
}

func (b *Board) Fleet() *Fleet {
	return b.fleet
}

//OwnAt returns the state of the own field at p.
func (b *Board) OwnAt(p Position) rune {
	return b.ownFields[p.X][p.Y]
}

//EnemyAt returns the state of the enemy field at p as currently known.
func (b *Board) EnemyAt(p Position) rune {
	return b.enemyFields[p.X][p.Y]
}

//ReceiveShot applies an incoming shot to the own fields and classifies
//it. A water cell becomes a miss, a ship cell becomes a hit and the
//owning ship loses one remaining cell; sinking the last ship of the
//fleet reports hit-sunk-all. Shooting the same coordinate again never
//mutates state, the outcome is re-derived from the current cell and
//ship state.
func (b *Board) ReceiveShot(p Position) Outcome {
	if _, ok := b.received[p]; ok {
		return b.repeatedShotOutcome(p)
	}
	b.received[p] = struct{}{}

	switch b.ownFields[p.X][p.Y] {
	case Taken:
		b.ownFields[p.X][p.Y] = Hit
		ship := b.fleet.ShipAt(p)
		ship.registerHit()
		if !ship.Sunk() {
			return OutcomeHit
		}
		if b.fleet.AllSunk() {
			return OutcomeAllSunk
		}
		return OutcomeSunk
	case Water:
		b.ownFields[p.X][p.Y] = Miss
		return OutcomeMiss
	default:
		return OutcomeMiss
	}
}

func (b *Board) repeatedShotOutcome(p Position) Outcome {
	cell := b.ownFields[p.X][p.Y]
	if cell == Water || cell == Miss {
		return OutcomeMiss
	}
	if ship := b.fleet.ShipAt(p); ship != nil && ship.Sunk() {
		return OutcomeSunk
	}
	return OutcomeHit
}

//RecordShotOutcome applies the reported outcome of an own shot at p to
//the enemy fields. A sunk report triggers sink propagation: the full
//group of connected hits is reconstructed and its whole perimeter is
//marked as miss, since no other ship can touch a sunk one.
func (b *Board) RecordShotOutcome(p Position, outcome Outcome) {
	switch {
	case outcome == OutcomeMiss:
		b.enemyFields[p.X][p.Y] = Miss
	case outcome.IsHit():
		b.enemyFields[p.X][p.Y] = Hit
		if outcome.IsSunk() {
			b.markEnemyShipSunk(p)
		}
	}
}

func (b *Board) markEnemyShipSunk(start Position) {
	for _, cell := range b.traceEnemyShip(start) {
		for _, n := range getAllNeighbours(cell) {
			if InBounds(n) && b.enemyFields[n.X][n.Y] != Hit {
				b.enemyFields[n.X][n.Y] = Miss
			}
		}
	}
}

//traceEnemyShip collects the group of hit cells 4-connected to start on
//the enemy fields. The enemy fields carry no ship identities, so the
//connected hits are the only record of which cells the sunk ship held.
func (b *Board) traceEnemyShip(start Position) []Position {
	cells := []Position{start}
	seen := map[Position]struct{}{start: {}}

	for i := 0; i < len(cells); i++ {
		for _, n := range getNeighbours(cells[i]) {
			if !InBounds(n) || b.enemyFields[n.X][n.Y] != Hit {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			cells = append(cells, n)
		}
	}
	return cells
}

func printHeader() {
	fmt.Print("   ")
	for i := 1; i <= BoardSize; i++ {
		fmt.Print(i, " ")
	}
	fmt.Println()
}

//PrintOwn prints the own fields.
func (b *Board) PrintOwn() {
	fmt.Println("Own fields:")
	printHeader()
	for i, row := range b.ownFields {
		fmt.Print(string(rune('A'+i)), "  ")
		for _, c := range row {
			fmt.Print(string(c), " ")
		}
		fmt.Println()
	}
}

//PrintEnemy prints the enemy fields as currently known. Unknown cells
//render as '?'. With revealed set, hits render as ships and unknown
//cells as water, used for the final board after a win.
func (b *Board) PrintEnemy(revealed bool) {
	fmt.Println("Enemy fields:")
	printHeader()
	for i, row := range b.enemyFields {
		fmt.Print(string(rune('A'+i)), "  ")
		for _, c := range row {
			switch {
			case c == Hit && revealed:
				fmt.Print(string(Taken), " ")
			case c == Hit || c == Miss:
				fmt.Print(string(c), " ")
			case revealed:
				fmt.Print(string(Water), " ")
			default:
				fmt.Print("? ")
			}
		}
		fmt.Println()
	}
}
