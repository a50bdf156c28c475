// Package wide provides 128-bit intermediate arithmetic on 64-bit words for the Q32.32
// kernel: product decomposition by 32-bit digits and Knuth Algorithm D division of a
// 128-bit dividend by a 64-bit divisor.
//
// The routines use only 64-bit operations so the results do not depend on whether the
// target has a native 128-bit multiply or divide instruction.
package wide
