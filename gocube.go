// Package gocube models a 3x3 twisty puzzle at the facelet level.
//
// # Features
//
//   - 54-facelet cube model with fixed centers
//   - The 12 quarter-turn moves (F, F', B, B', U, U', D, D', L, L', R, R')
//   - Single facelet position tracking without touching a cube
//   - Edge piece lookup by color pair
//   - Layer-by-layer phase detection
//
// # Quick Start
//
//	cube := gocube.NewSolvedCube(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
//	fmt.Println(cube)
//
//	moves, _ := gocube.ParseMoves("F B' L2 D")
//	cube.Apply(moves...)
//	fmt.Println("Phase:", cube.DetectPhase().DisplayName())
//
// # Layout
//
// Facelets are numbered 0-53 face by face in the order Top, Left, Front,
// Right, Back, Bottom, each face row-major:
//
//	          0  1  2
//	          3  4  5
//	          6  7  8
//	 9 10 11 18 19 20 27 28 29 36 37 38
//	12 13 14 21 22 23 30 31 32 39 40 41
//	15 16 17 24 25 26 33 34 35 42 43 44
//	         45 46 47
//	         48 49 50
//	         51 52 53
//
// The bottom cross solver lives in the solver subpackage.
package gocube
