package design

// TransferLP1 evaluates the s-domain one-pole low-pass transfer function
//
//	H(s) = wc / (wc + s)
//
// at the query point s, where wc is the angular cutoff (2*pi*freq) as a
// complex value.
func TransferLP1(wc, s complex128) complex128 {
	return wc / (wc + s)
}

// TransferHP1 evaluates the s-domain one-pole high-pass transfer function
//
//	H(s) = s / (wc + s)
func TransferHP1(wc, s complex128) complex128 {
	return s / (wc + s)
}
