// Package cycle implements the 1-based disjoint-cycle notation used
// throughout the external interface: Parse turns a string like
// "(1 2)(3 4 5)" into a 0-based image array, Format turns an image
// array back into that notation.
//
// Cycles inside a Parse input are applied left to right: the first
// cycle listed acts first, so "(1 2)(2 3)" sends 1 to 3. In the
// (A·B)(x) = A(B(x)) convention of permstore.Store.Multiply, parsing
// "(A)(B)" therefore yields B·A. Fixed
// points are never written explicitly; "()" and the empty string both
// denote the identity.
package cycle
