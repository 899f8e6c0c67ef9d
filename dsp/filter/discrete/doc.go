// Package discrete converts continuous-time transfer functions into
// discrete-time IIR filter coefficients with the bilinear (Tustin) transform.
//
// [Discretize] substitutes s = K*(z-1)/(z+1), K = 2*fs, into k*N(s)/D(s) and
// clears the (z+1)^n denominator, n = deg D. The resulting [Filter] holds two
// coefficient slices of length n+1 in descending powers of z, equivalently
// ascending delays z^-i:
//
//	y[t] = sum_i In[i]*x[t-i] - sum_{j>0} Out[j]*y[t-j],  Out[0] = 1
//
// Running that difference equation on a signal is left to a runtime filter
// such as a direct-form IIR section. Stability is not checked: an unstable
// analog design produces an unstable digital one.
//
// [WithPrewarp] replaces K by w0/tan(w0/(2*fs)) so that the analog and digital
// responses coincide at one chosen frequency. [DiscretizeBank] discretizes
// independent transfer functions concurrently.
package discrete
