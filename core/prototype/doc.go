// Package prototype keeps a registry of biome templates and produces new
// biomes by cloning them instead of constructing them from scratch.
//
// Example usage:
//
//	reg := prototype.NewRegistry()
//	if err := reg.Register("Forest", &prototype.Forest{TreeType: "Pine", Wildlife: "Deer"}); err != nil {
//	    return err
//	}
//	b, err := reg.Create("Forest")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(b.Describe()) // Forest with Pine trees and Deer wildlife.
package prototype
