package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-register/internal/apperr"
	"github.com/fekuna/omnipos-register/internal/display"
	"github.com/fekuna/omnipos-register/internal/logger"
	"github.com/fekuna/omnipos-register/internal/register"
	"github.com/fekuna/omnipos-register/internal/register/dto"
	"go.uber.org/zap"
)

const menu = `
1. View list of products
2. Add a product to the cart
3. Update product quantity
4. Remove product
5. View the cart
6. Apply discount
7. Checkout
`

const (
	msgInvalidNumber = "Invalid input. Please enter a valid number."
	msgInvalidAmount = "Invalid input. Please enter a valid amount."
	msgInvalidOption = "'%d' is not a valid option. Please enter a number between 1 and 7."
	msgThankYou      = "Purchase completed successfully. Thank you for your purchase!"
)

// errInvalidInput marks a line that could not be parsed as a number.
var errInvalidInput = errors.New("invalid input")

type inputLine struct {
	text string
	err  error
}

// CLIHandler drives a register session over a line-oriented terminal.
// All parsing and printing happens here; the use case only sees numbers.
type CLIHandler struct {
	uc     register.UseCase
	in     *bufio.Reader
	lines  chan inputLine
	out    io.Writer
	logger logger.ZapLogger
}

func NewCLIHandler(uc register.UseCase, in io.Reader, out io.Writer, log logger.ZapLogger) *CLIHandler {
	return &CLIHandler{
		uc:     uc,
		in:     bufio.NewReader(in),
		out:    out,
		logger: log,
	}
}

// Run prints the catalog and serves menu choices until a checkout
// succeeds, the input ends or ctx is canceled. Reaching the end of input
// is not an error; cancellation returns ctx.Err() even while a prompt is
// waiting for input.
func (h *CLIHandler) Run(ctx context.Context) error {
	h.println("List of Products Items:")
	h.printCatalog()

	if err := ctx.Err(); err != nil {
		return err
	}
	h.startReader(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		h.print(menu)
		option, err := h.readInt(ctx, "Enter an option: ")
		if errors.Is(err, io.EOF) {
			h.logger.Info("input closed, ending session")
			return nil
		}
		if err != nil {
			if !errors.Is(err, errInvalidInput) {
				return err
			}
			h.println(msgInvalidNumber)
			continue
		}

		done, err := h.dispatch(ctx, option)
		if errors.Is(err, io.EOF) {
			h.logger.Info("input closed, ending session")
			return nil
		}
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (h *CLIHandler) dispatch(ctx context.Context, option int) (bool, error) {
	switch option {
	case 1:
		h.printCatalog()
		return false, nil
	case 2:
		return false, h.addProduct(ctx)
	case 3:
		return false, h.updateQuantity(ctx)
	case 4:
		return false, h.removeProduct(ctx)
	case 5:
		h.printCart()
		return false, nil
	case 6:
		return false, h.applyDiscount(ctx)
	case 7:
		return h.checkout(ctx)
	default:
		h.printf(msgInvalidOption+"\n", option)
		return false, nil
	}
}

func (h *CLIHandler) addProduct(ctx context.Context) error {
	productID, err := h.readInt(ctx, "\nEnter the ID of the product: ")
	if err != nil {
		return h.inputError(err, msgInvalidNumber)
	}
	quantity, err := h.readInt(ctx, "Enter the quantity: ")
	if err != nil {
		return h.inputError(err, msgInvalidNumber)
	}

	if _, err := h.uc.AddProduct(productID, quantity); err != nil {
		h.renderError(err)
		return nil
	}
	h.printCart()
	return nil
}

func (h *CLIHandler) updateQuantity(ctx context.Context) error {
	productID, err := h.readInt(ctx, "Enter the ID of the product to update: ")
	if err != nil {
		return h.inputError(err, msgInvalidNumber)
	}
	quantity, err := h.readInt(ctx, "Enter the new quantity: ")
	if err != nil {
		return h.inputError(err, msgInvalidNumber)
	}

	item, err := h.uc.UpdateQuantity(productID, quantity)
	if err != nil {
		h.renderError(err)
	} else {
		h.printf("Quantity of %s updated to %d.\n", item.Name, item.Quantity)
	}
	h.printCart()
	return nil
}

func (h *CLIHandler) removeProduct(ctx context.Context) error {
	productID, err := h.readInt(ctx, "Enter the ID of the product to remove: ")
	if err != nil {
		return h.inputError(err, msgInvalidNumber)
	}

	item, err := h.uc.RemoveProduct(productID)
	if err != nil {
		h.renderError(err)
	} else {
		h.printf("%s removed from the cart.\n", item.Name)
	}
	h.printCart()
	return nil
}

func (h *CLIHandler) applyDiscount(ctx context.Context) error {
	percentage, err := h.readFloat(ctx, "Enter the percentage discount to apply: ")
	if err != nil {
		return h.inputError(err, msgInvalidNumber)
	}

	res, err := h.uc.ApplyDiscount(percentage)
	if err != nil {
		h.renderError(err)
		return nil
	}
	h.printf("The %s discount has been successfully applied.\n", display.Percent(res.Percentage))
	h.printCart()
	return nil
}

func (h *CLIHandler) checkout(ctx context.Context) (bool, error) {
	view := h.uc.ViewCart()
	if view.IsEmpty() {
		h.println(apperr.ErrMsgNothingToCheckout)
		return false, nil
	}
	h.printCart()

	paid, err := h.readFloat(ctx, "Enter the amount paid: ")
	if err != nil {
		return false, h.inputError(err, msgInvalidAmount)
	}

	receipt, err := h.uc.Checkout(&dto.CheckoutInput{AmountPaid: paid})
	if err != nil {
		h.renderError(err)
		return false, nil
	}

	h.printf("Change: %s\n", display.Money(receipt.Change))
	h.println(msgThankYou)
	return true, nil
}

func (h *CLIHandler) printCatalog() {
	for _, p := range h.uc.Products() {
		h.println(display.Product(p))
	}
}

func (h *CLIHandler) printCart() {
	view := h.uc.ViewCart()
	if view.IsEmpty() {
		h.println(apperr.ErrMsgCartEmpty)
		return
	}
	for item := range view.Items() {
		h.println(display.LineItem(item))
	}
	h.println(display.Total(view.Total()))
}

// renderError prints the message of a register outcome. Anything outside
// the register taxonomy is logged as well.
func (h *CLIHandler) renderError(err error) {
	if apperr.CodeOf(err) == apperr.CodeUnknown {
		h.logger.Error("unexpected register error", zap.Error(err))
	}
	h.println(err.Error())
}

// inputError prints msg for unparsable input and passes other errors
// (end of input, read failures, cancellation) up to Run.
func (h *CLIHandler) inputError(err error, msg string) error {
	if errors.Is(err, errInvalidInput) {
		h.println(msg)
		return nil
	}
	return err
}

// startReader feeds input lines to readLine from a separate goroutine so
// a blocked read never delays cancellation. Lines have no length limit.
func (h *CLIHandler) startReader(ctx context.Context) {
	h.lines = make(chan inputLine)
	go func() {
		defer close(h.lines)
		send := func(l inputLine) bool {
			select {
			case h.lines <- l:
				return true
			case <-ctx.Done():
				return false
			}
		}
		for {
			text, err := h.in.ReadString('\n')
			if text != "" || err == nil {
				if !send(inputLine{text: text}) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					err = fmt.Errorf("failed to read input: %w", err)
				}
				send(inputLine{err: err})
				return
			}
		}
	}()
}

func (h *CLIHandler) readLine(ctx context.Context, prompt string) (string, error) {
	h.print(prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-h.lines:
		if !ok {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

func (h *CLIHandler) readInt(ctx context.Context, prompt string) (int, error) {
	line, err := h.readLine(ctx, prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, errInvalidInput
	}
	return n, nil
}

func (h *CLIHandler) readFloat(ctx context.Context, prompt string) (float64, error) {
	line, err := h.readLine(ctx, prompt)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(line, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errInvalidInput
	}
	return f, nil
}

func (h *CLIHandler) print(s string) {
	fmt.Fprint(h.out, s)
}

func (h *CLIHandler) println(s string) {
	fmt.Fprintln(h.out, s)
}

func (h *CLIHandler) printf(format string, args ...interface{}) {
	fmt.Fprintf(h.out, format, args...)
}
