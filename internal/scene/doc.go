// Package scene holds the dancing cube scene: a 3x3x3 lattice of colored
// cubes in three level groups under one root, two mirrored particle clouds,
// the lights and the camera.
//
// The lattice shares one box mesh between all cubes. Faces are colored per
// triangle pair:
//
//	right  0,1   red
//	left   2,3   orange
//	up     4,5   pink
//	down   6,7   blue
//	front  8,9   green
//	back  10,11  yellow
//
// [Context] owns everything built for one run and must be closed.
package scene
