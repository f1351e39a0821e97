package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bitvec"
)

func init() {
	rootCmd.AddCommand(
		infoCmd,
		newBinaryCommand("and", "Intersect two sets", (*bitvec.BitSet).And),
		newBinaryCommand("or", "Unite two sets", (*bitvec.BitSet).Or),
		newBinaryCommand("xor", "Symmetric difference of two sets", (*bitvec.BitSet).Xor),
		newBinaryCommand("andnot", "Subtract the second set from the first", (*bitvec.BitSet).AndNot),
		notCmd,
		shiftCmd,
		sliceCmd,
		randCmd,
	)

	shiftCmd.Flags().BoolVar(&flagRight, "right", false, "shift toward lower indices")
}

var flagRight bool

var infoCmd = &cobra.Command{
	Use:   "info SET...",
	Short: "Describe one or more sets",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for i, arg := range args {
			b, err := parseArg(arg)
			if err != nil {
				return err
			}
			if i > 0 {
				fmt.Println()
			}
			printInfo(b)
		}
		return nil
	},
}

var notCmd = &cobra.Command{
	Use:   "not SET",
	Short: "Complement a set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := parseArg(args[0])
		if err != nil {
			return err
		}
		return printSet(b.Not())
	},
}

var shiftCmd = &cobra.Command{
	Use:   "shift SET N",
	Short: "Shift a set by N positions",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := parseArg(args[0])
		if err != nil {
			return err
		}
		n, err := parseCount(args[1], "shift count")
		if err != nil {
			return err
		}
		if flagRight {
			b.Rsh(n)
		} else {
			b.Lsh(n)
		}
		return printSet(b)
	},
}

var sliceCmd = &cobra.Command{
	Use:   "slice SET FROM TO",
	Short: "Extract the half-open window [FROM,TO) re-indexed to zero",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := parseArg(args[0])
		if err != nil {
			return err
		}
		from, err := parseCount(args[1], "from")
		if err != nil {
			return err
		}
		to, err := parseCount(args[2], "to")
		if err != nil {
			return err
		}
		if to < from {
			return fmt.Errorf("to (%d) must not be below from (%d)", to, from)
		}
		return printSet(b.Slice(from, to))
	},
}

var randCmd = &cobra.Command{
	Use:   "rand N",
	Short: "Generate N uniformly random bits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseCount(args[0], "bit count")
		if err != nil {
			return err
		}
		return printSet(bitvec.Random(n))
	},
}

func newBinaryCommand(name, short string, op func(a, b *bitvec.BitSet) *bitvec.BitSet) *cobra.Command {
	return &cobra.Command{
		Use:   name + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return err
			}
			b, err := parseArg(args[1])
			if err != nil {
				return err
			}
			return printSet(op(a, b))
		},
	}
}

func parseArg(s string) (*bitvec.BitSet, error) {
	b, err := bitvec.Parse(s)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed value", "input", s, "len", b.Len(), "finite", b.IsFinite())
	return b, nil
}

func parseCount(s, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative", what)
	}
	return n, nil
}

func printSet(b *bitvec.BitSet) error {
	s, err := b.ToString(flagBase)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

func printInfo(b *bitvec.BitSet) {
	hex, _ := b.ToString(16)
	fmt.Printf("%-13s%s\n", "text:", b)
	fmt.Printf("%-13s%s\n", "hex:", hex)
	fmt.Printf("%-13s%t\n", "finite:", b.IsFinite())
	fmt.Printf("%-13s%d\n", "len:", b.Len())
	fmt.Printf("%-13s%d\n", "words:", b.WordCount())
	if n, err := b.Cardinality(); err == nil {
		fmt.Printf("%-13s%d\n", "cardinality:", n)
	} else {
		fmt.Printf("%-13s%s\n", "cardinality:", "indefinite")
	}
	if hi, err := b.Msb(); err == nil {
		fmt.Printf("%-13s%d\n", "msb:", hi)
	} else {
		fmt.Printf("%-13s%s\n", "msb:", "indefinite")
	}
	fmt.Printf("%-13s%d\n", "lsb:", b.Lsb())
	fmt.Printf("%-13s%d\n", "ntz:", b.Ntz())
}
