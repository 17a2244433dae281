package console

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/mrhaji1999/vandapay-sub001/cmd"
	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

func init() {
	cmd.Register(
		&cli.Command{
			Name:     "transactions",
			Aliases:  []string{"tx"},
			Usage:    "Show the wallet transaction history",
			Category: "wallet",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "csv",
					Usage: "emit the history as CSV instead of a table",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write to `FILE` instead of stdout",
				},
			},
			Action: transactionsAction,
		},
	)
}

var transactionHeader = []string{
	"ID", "SENDER", "RECEIVER", "AMOUNT", "TYPE", "STATUS", "CREATED", "DESCRIPTION",
}

func transactionsAction(c *cli.Context) error {
	return runAs(c, func(ctx context.Context, env *Env) error {

		list, err := env.API.TransactionHistory(ctx)
		if err != nil {
			return err
		}

		out := os.Stdout
		if name := c.String("output"); name != "" {
			file, err := os.Create(name)
			if err != nil {
				return err
			}
			defer file.Close()
			out = file
		}

		if list == nil || len(list.Data) == 0 {
			if !c.Bool("csv") {
				fmt.Fprintln(out, "no transactions")
				return nil
			}
			list = &model.TransactionList{}
		}

		if c.Bool("csv") {
			return writeTransactionsCSV(out, list.Data)
		}

		rows := make([][]string, 0, len(list.Data))
		for _, tx := range list.Data {
			row := transactionRow(tx)
			row[5] = renderStatus(row[5])
			rows = append(rows, row)
		}
		renderTable(out, transactionHeader, rows)
		return nil
	})
}

func transactionRow(tx *model.Transaction) []string {
	return []string{
		strconv.FormatInt(tx.Id.Int64(), 10),
		strconv.FormatInt(tx.SenderId.Int64(), 10),
		strconv.FormatInt(tx.ReceiverId.Int64(), 10),
		strconv.FormatFloat(float64(tx.Amount), 'f', 2, 64),
		tx.Type,
		tx.Status,
		tx.CreatedAt.String(),
		tx.Description,
	}
}

func writeTransactionsCSV(out *os.File, data []*model.Transaction) error {
	w := csv.NewWriter(out)
	if err := w.Write(transactionHeader); err != nil {
		return err
	}
	for _, tx := range data {
		if err := w.Write(transactionRow(tx)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
